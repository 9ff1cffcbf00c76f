package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"github.com/folio/internal/store"
)

// Kind 是后台路由中使用的内容类型标识。
type Kind string

const (
	KindMessages Kind = "messages"
	KindClients  Kind = "clients"
	KindReviews  Kind = "reviews"
	KindProjects Kind = "projects"
)

// Kinds lists every content kind in dashboard order.
var Kinds = []Kind{KindMessages, KindClients, KindReviews, KindProjects}

// ParseKind 将路由参数解析为 Kind。
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// KindCount 汇总单个类型的记录数量。
type KindCount struct {
	Kind      Kind  `json:"kind"`
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Moderated bool  `json:"moderated"`
}

// ReviewRow 在后台评价列表中附带星级文本。
type ReviewRow struct {
	db.Review
	Stars string `json:"stars"`
}

type moderationTable interface {
	moderated() bool
	listAll(ctx context.Context) (any, error)
	toggle(ctx context.Context, id string) (bool, error)
	set(ctx context.Context, id string, approved bool) error
	remove(ctx context.Context, id string) error
	count(ctx context.Context) (KindCount, error)
}

type repoTable[T store.Model] struct {
	kind    Kind
	repo    store.Repository[T]
	present func([]T) any
}

func (t repoTable[T]) moderated() bool {
	return t.repo.Moderated()
}

func (t repoTable[T]) listAll(ctx context.Context) (any, error) {
	items, err := t.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if t.present != nil {
		return t.present(items), nil
	}
	return items, nil
}

func (t repoTable[T]) toggle(ctx context.Context, id string) (bool, error) {
	return t.repo.ToggleApproved(ctx, id)
}

func (t repoTable[T]) set(ctx context.Context, id string, approved bool) error {
	return t.repo.SetApproved(ctx, id, approved)
}

func (t repoTable[T]) remove(ctx context.Context, id string) error {
	return t.repo.Delete(ctx, id)
}

func (t repoTable[T]) count(ctx context.Context) (KindCount, error) {
	total, err := t.repo.Count(ctx, false)
	if err != nil {
		return KindCount{}, err
	}
	pending, err := t.repo.Count(ctx, true)
	if err != nil {
		return KindCount{}, err
	}
	return KindCount{Kind: t.kind, Total: total, Pending: pending, Moderated: t.repo.Moderated()}, nil
}

// ModerationService 提供后台的列表、审核切换与删除能力。
// 每个操作只涉及一条记录的一个字段或整行删除，没有批量操作。
type ModerationService struct {
	tables      map[Kind]moderationTable
	submissions *SubmissionService
}

// NewModerationService 构造 ModerationService。
func NewModerationService(repos Repositories, submissions *SubmissionService) *ModerationService {
	return &ModerationService{
		tables: map[Kind]moderationTable{
			KindMessages: repoTable[db.ContactMessage]{kind: KindMessages, repo: repos.Messages},
			KindClients:  repoTable[db.Client]{kind: KindClients, repo: repos.Clients},
			KindReviews: repoTable[db.Review]{kind: KindReviews, repo: repos.Reviews, present: func(items []db.Review) any {
				rows := make([]ReviewRow, 0, len(items))
				for _, item := range items {
					rows = append(rows, ReviewRow{Review: item, Stars: Stars(item.Rating)})
				}
				return rows
			}},
			KindProjects: repoTable[db.Project]{kind: KindProjects, repo: repos.Projects},
		},
		submissions: submissions,
	}
}

func (s *ModerationService) table(kind Kind) (moderationTable, error) {
	table, ok := s.tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return table, nil
}

// ListAll 返回该类型的全部记录（不论审核状态），按创建时间倒序。
func (s *ModerationService) ListAll(ctx context.Context, kind Kind) (any, error) {
	table, err := s.table(kind)
	if err != nil {
		return nil, err
	}

	items, err := table.listAll(ctx)
	if err != nil {
		return nil, storeError("list "+string(kind), err)
	}
	return items, nil
}

// ToggleApproval 翻转单条记录的 approved 并返回存储确认后的新值。
func (s *ModerationService) ToggleApproval(ctx context.Context, kind Kind, id string) (bool, error) {
	table, err := s.moderatedTable(kind)
	if err != nil {
		return false, err
	}

	approved, err := table.toggle(ctx, id)
	if err != nil {
		return false, storeError("toggle "+string(kind), err)
	}
	return approved, nil
}

// SetApproval 将单条记录的 approved 写为指定值。
func (s *ModerationService) SetApproval(ctx context.Context, kind Kind, id string, approved bool) error {
	table, err := s.moderatedTable(kind)
	if err != nil {
		return err
	}

	if err := table.set(ctx, id, approved); err != nil {
		return storeError("set approval "+string(kind), err)
	}
	return nil
}

// Delete 物理删除单条记录，不影响其他类型。
func (s *ModerationService) Delete(ctx context.Context, kind Kind, id string) error {
	table, err := s.table(kind)
	if err != nil {
		return err
	}

	if err := table.remove(ctx, id); err != nil {
		return storeError("delete "+string(kind), err)
	}
	return nil
}

// AddProject 由后台新增作品。
func (s *ModerationService) AddProject(ctx context.Context, input ProjectInput) error {
	if s.submissions == nil {
		return errors.New("project submission is not configured")
	}
	return s.submissions.SubmitProject(ctx, input)
}

// Counts 返回仪表盘所需的各类型数量。
func (s *ModerationService) Counts(ctx context.Context) ([]KindCount, error) {
	counts := make([]KindCount, 0, len(Kinds))
	for _, kind := range Kinds {
		table, err := s.table(kind)
		if err != nil {
			return nil, err
		}
		count, err := table.count(ctx)
		if err != nil {
			return nil, storeError("count "+string(kind), err)
		}
		counts = append(counts, count)
	}
	return counts, nil
}

func (s *ModerationService) moderatedTable(kind Kind) (moderationTable, error) {
	table, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	if !table.moderated() {
		return nil, fmt.Errorf("%s: %w", kind, ErrNotModerated)
	}
	return table, nil
}

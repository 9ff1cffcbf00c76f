package service

import (
	"context"
	"html"
	"log/slog"
	"time"

	"github.com/folio/internal/db"
)

// Listing 是公开列表的结果，Fallback 为 true 表示返回的是内置样例数据。
type Listing[T any] struct {
	Items    []T  `json:"items"`
	Fallback bool `json:"fallback"`
}

// ProjectCard 在作品记录之外附带渲染好的描述 HTML。
type ProjectCard struct {
	db.Project
	DescriptionHTML string `json:"description_html"`
}

// ListingService 为前台提供只读列表。
// 查询失败或没有可展示的记录时返回固定样例，保证页面区块不为空。
type ListingService struct {
	repos  Repositories
	logger *slog.Logger
	now    func() time.Time
}

// NewListingService 构造 ListingService，logger 为空时使用 slog 默认实例。
func NewListingService(repos Repositories, logger *slog.Logger) *ListingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingService{repos: repos, logger: logger, now: time.Now}
}

// Clients 返回已审核的客户，按创建时间倒序。
func (s *ListingService) Clients(ctx context.Context) Listing[db.Client] {
	items, err := s.repos.Clients.ListApproved(ctx)
	if err != nil || len(items) == 0 {
		s.degraded(ctx, "clients", err)
		return Listing[db.Client]{Items: FallbackClients(s.now()), Fallback: true}
	}
	return Listing[db.Client]{Items: items}
}

// Reviews 返回已审核的评价，按创建时间倒序。
func (s *ListingService) Reviews(ctx context.Context) Listing[db.Review] {
	items, err := s.repos.Reviews.ListApproved(ctx)
	if err != nil || len(items) == 0 {
		s.degraded(ctx, "reviews", err)
		return Listing[db.Review]{Items: FallbackReviews(s.now()), Fallback: true}
	}
	return Listing[db.Review]{Items: items}
}

// Projects 返回全部作品，按创建时间倒序。
func (s *ListingService) Projects(ctx context.Context) Listing[ProjectCard] {
	items, err := s.repos.Projects.ListApproved(ctx)
	fallback := false
	if err != nil || len(items) == 0 {
		s.degraded(ctx, "projects", err)
		items = FallbackProjects(s.now())
		fallback = true
	}

	cards := make([]ProjectCard, 0, len(items))
	for _, project := range items {
		rendered, renderErr := RenderMarkdown(project.Description)
		if renderErr != nil {
			s.logger.WarnContext(ctx, "render project description",
				slog.String("project_id", project.ID),
				slog.String("error", renderErr.Error()),
			)
			rendered = "<p>" + html.EscapeString(project.Description) + "</p>"
		}
		cards = append(cards, ProjectCard{Project: project, DescriptionHTML: rendered})
	}
	return Listing[ProjectCard]{Items: cards, Fallback: fallback}
}

func (s *ListingService) degraded(ctx context.Context, kind string, err error) {
	if err != nil {
		s.logger.WarnContext(ctx, "public listing degraded to sample data",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.DebugContext(ctx, "public listing empty, serving sample data", slog.String("kind", kind))
}

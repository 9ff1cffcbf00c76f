// Package store implements the record store that backs every content table.
// Each table is reached through a Repository bound to one model type; every
// operation is a single request against a single row or table, with no
// transaction spanning several records.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a mutation or lookup targets a missing id.
	ErrNotFound = errors.New("record not found")
	// ErrNotModerated is returned for approval changes on tables without an approved column.
	ErrNotModerated = errors.New("table has no approval state")
)

// Model is satisfied by every gorm model stored through this package.
type Model interface {
	TableName() string
	GetID() string
}

type moderated interface {
	Moderated() bool
}

// Repository is the capability surface the services depend on.
type Repository[T Model] interface {
	Table() string
	Moderated() bool
	Insert(ctx context.Context, record *T) error
	Get(ctx context.Context, id string) (*T, error)
	ListAll(ctx context.Context) ([]T, error)
	ListApproved(ctx context.Context) ([]T, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	ToggleApproved(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, onlyPending bool) (int64, error)
}

// GormRepository stores T in the table named by T.TableName().
type GormRepository[T Model] struct {
	db        *gorm.DB
	table     string
	moderated bool
}

// NewRepository binds a repository for T to gdb.
func NewRepository[T Model](gdb *gorm.DB) *GormRepository[T] {
	var zero T
	gated := false
	if m, ok := any(zero).(moderated); ok {
		gated = m.Moderated()
	}
	return &GormRepository[T]{db: gdb, table: zero.TableName(), moderated: gated}
}

// Table returns the backing table name.
func (r *GormRepository[T]) Table() string {
	return r.table
}

// Moderated reports whether rows carry an approved flag.
func (r *GormRepository[T]) Moderated() bool {
	return r.moderated
}

// Insert creates one row.
func (r *GormRepository[T]) Insert(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// Get loads a row by primary key.
func (r *GormRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get %s %s: %w", r.table, id, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s %s: %w", r.table, id, err)
	}
	return &item, nil
}

// ListAll returns every row, newest first.
func (r *GormRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.list(ctx, false)
}

// ListApproved returns approved rows newest first; unmoderated tables return every row.
func (r *GormRepository[T]) ListApproved(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.moderated)
}

func (r *GormRepository[T]) list(ctx context.Context, approvedOnly bool) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	items := make([]T, 0)
	if err := query.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return items, nil
}

// SetApproved writes the approved flag of a single row.
func (r *GormRepository[T]) SetApproved(ctx context.Context, id string, approved bool) error {
	if !r.moderated {
		return fmt.Errorf("%s: %w", r.table, ErrNotModerated)
	}

	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("approved", approved)
	if result.Error != nil {
		return fmt.Errorf("set approval %s %s: %w", r.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("set approval %s %s: %w", r.table, id, ErrNotFound)
	}
	return nil
}

// ToggleApproved flips the approved flag in one statement and returns the stored value.
func (r *GormRepository[T]) ToggleApproved(ctx context.Context, id string) (bool, error) {
	if !r.moderated {
		return false, fmt.Errorf("%s: %w", r.table, ErrNotModerated)
	}

	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Update("approved", gorm.Expr("NOT approved"))
	if result.Error != nil {
		return false, fmt.Errorf("toggle approval %s %s: %w", r.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, fmt.Errorf("toggle approval %s %s: %w", r.table, id, ErrNotFound)
	}

	var approved bool
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Select("approved").
		Scan(&approved).Error; err != nil {
		return false, fmt.Errorf("read approval %s %s: %w", r.table, id, err)
	}
	return approved, nil
}

// Delete removes one row permanently.
func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("delete %s %s: %w", r.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %s %s: %w", r.table, id, ErrNotFound)
	}
	return nil
}

// Count returns the number of rows, or of unapproved rows when onlyPending is set.
func (r *GormRepository[T]) Count(ctx context.Context, onlyPending bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if onlyPending {
		if !r.moderated {
			return 0, nil
		}
		query = query.Where("approved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return total, nil
}

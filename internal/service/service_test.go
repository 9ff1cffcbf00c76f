package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"github.com/folio/internal/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errStoreDown = errors.New("connection refused")

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

// failingRepo simulates an unreachable store and records insert attempts.
type failingRepo[T store.Model] struct {
	moderated bool
	inserts   int
}

func (r *failingRepo[T]) Table() string {
	var zero T
	return zero.TableName()
}

func (r *failingRepo[T]) Moderated() bool { return r.moderated }

func (r *failingRepo[T]) Insert(context.Context, *T) error {
	r.inserts++
	return errStoreDown
}

func (r *failingRepo[T]) Get(context.Context, string) (*T, error) { return nil, errStoreDown }

func (r *failingRepo[T]) ListAll(context.Context) ([]T, error) { return nil, errStoreDown }

func (r *failingRepo[T]) ListApproved(context.Context) ([]T, error) { return nil, errStoreDown }

func (r *failingRepo[T]) SetApproved(context.Context, string, bool) error { return errStoreDown }

func (r *failingRepo[T]) ToggleApproved(context.Context, string) (bool, error) {
	return false, errStoreDown
}

func (r *failingRepo[T]) Delete(context.Context, string) error { return errStoreDown }

func (r *failingRepo[T]) Count(context.Context, bool) (int64, error) { return 0, errStoreDown }

func failingRepositories() (Repositories, *failingRepo[db.Client], *failingRepo[db.Review], *failingRepo[db.Project]) {
	clients := &failingRepo[db.Client]{moderated: true}
	reviews := &failingRepo[db.Review]{moderated: true}
	projects := &failingRepo[db.Project]{}
	return Repositories{
		Messages: &failingRepo[db.ContactMessage]{},
		Clients:  clients,
		Reviews:  reviews,
		Projects: projects,
	}, clients, reviews, projects
}

// Package seedtest provides fixture-loaded databases for tests.
package seedtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
	"github.com/Moldovia-Peach/my-nc-news/internal/seed"
)

// NewDB opens a private in-memory SQLite database loaded with the fixture
// dataset. The handle is closed when the test ends.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db := OpenEmpty(tb)

	d, err := seed.TestData()
	if err != nil {
		tb.Fatalf("load fixtures: %v", err)
	}
	if err := seed.Run(context.Background(), db, d); err != nil {
		tb.Fatalf("seed: %v", err)
	}
	return db
}

// OpenEmpty opens a private in-memory SQLite database with no tables.
func OpenEmpty(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := repo.OpenSQLite(repo.Options{
		Path:         fmt.Sprintf("file:news_%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = repo.Close(db) })
	return db
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can use errors.Is with either.
var ErrNotFound = gorm.ErrRecordNotFound

// ListTopics returns every topic ordered by slug. It returns an empty
// (non-nil) slice when there are none.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).
		Order("slug asc").
		Find(&out).Error
	return out, err
}

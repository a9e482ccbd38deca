package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).
		Order("username asc").
		Find(&out).Error
	return out, err
}

// GetUser fetches a user by username, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user with the given username exists.
func UserExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Count(&n).Error
	return n > 0, err
}

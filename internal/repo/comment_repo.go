package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// ListCommentsByArticle returns the article's comments, newest first.
// Comments sharing a timestamp are ordered by descending id.
func ListCommentsByArticle(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Order("comment_id desc").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a comment by author on articleID and returns the
// stored row, including its assigned id and zero votes.
//
// Foreign keys are enforced by the database; a missing article or author
// surfaces as the driver's constraint error.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// InsertComment stores c as given, keeping its timestamp and votes.
// Used by seeding.
func InsertComment(ctx context.Context, db *gorm.DB, c *domain.Comment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

// DeleteComment removes a comment by id. If nothing was deleted it returns
// ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

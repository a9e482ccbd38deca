// Package services – CommentService
//
// This file implements listing, posting and deleting comments. Operations
// that check for a parent row before acting run the check and the action in
// one transaction, so a concurrent delete cannot slip between them.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

// CommentService provides comment operations scoped to articles.
type CommentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// ListForArticle returns the article's comments, newest first.
//
// Errors:
//   - NotFound when the article does not exist.
//   - An empty slice (not an error) when it exists but has no comments.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "ListForArticle",
		trace.WithAttributes(attribute.Int64("article.id", articleID)),
	)
	defer span.End()

	var out []domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := repo.ArticleExists(ctx, tx, articleID)
		if err != nil {
			return err
		}
		if !ok {
			return articleNotFound(articleID)
		}
		out, err = repo.ListCommentsByArticle(ctx, tx, articleID)
		return err
	})
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

// Create posts a comment by username on the article.
//
// Semantics and validation:
//   - username and body must be non-blank; otherwise ErrMissingFields.
//   - username must exist; otherwise ErrUsernameNotFound.
//   - the article must exist; otherwise NotFound.
//
// The checks and the insert share one transaction. A foreign key failure
// that still reaches the insert is translated by apperr.FromDB (404).
func (s *CommentService) Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int64("article.id", articleID),
			attribute.String("author", username),
		),
	)
	defer span.End()

	if strings.TrimSpace(username) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrMissingFields
	}

	var out *domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := repo.UserExists(ctx, tx, username)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUsernameNotFound
		}
		if ok, err = repo.ArticleExists(ctx, tx, articleID); err != nil {
			return err
		} else if !ok {
			return articleNotFound(articleID)
		}

		c, err := repo.CreateComment(ctx, tx, articleID, username, body)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()

	if err := repo.DeleteComment(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return commentNotFound(id)
		}
		return apperr.FromDB(err)
	}
	return nil
}

// Package services – ArticleService
//
// This file implements reads and vote updates for articles. Missing articles
// are reported as apperr NotFound errors carrying the requested id; every
// other database failure goes through apperr.FromDB.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

// ArticleService provides article lookups, listings and voting.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Get returns the stored article with the given id.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()

	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, articleNotFound(id)
		}
		return nil, apperr.FromDB(err)
	}
	return a, nil
}

// List returns article summaries for an already validated query
// (see ParseArticleListParams).
func (s *ArticleService) List(ctx context.Context, q repo.ArticleQuery) ([]domain.ArticleSummary, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("sort_by", string(q.SortBy)),
			attribute.Bool("desc", q.Desc),
			attribute.String("topic", q.Topic),
		),
	)
	defer span.End()

	out, err := repo.ListArticles(ctx, s.DB, q)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

// Vote adds delta to the article's votes and returns the updated article.
// The increment happens in the database; the update and the read-back run
// in one transaction.
func (s *ArticleService) Vote(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Vote",
		trace.WithAttributes(
			attribute.Int64("article.id", id),
			attribute.Int("inc_votes", delta),
		),
	)
	defer span.End()

	var out *domain.Article
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.IncrementArticleVotes(ctx, tx, id, delta)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, articleNotFound(id)
		}
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

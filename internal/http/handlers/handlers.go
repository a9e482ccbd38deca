// Package handlers holds the HTTP endpoints of the news API.
//
// Handlers are transport-thin: they parse path, query and body input, call
// a service, and shape the success body. Failures are never written here;
// they are attached to the gin context (see fail) and rendered as {"msg"}
// by middleware.ErrorHandler.
package handlers

import (
	"context"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

//
// Service contracts (context-aware)
//

// TopicService lists topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

// ArticleService reads and votes on articles.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// Get returns a single stored article.
	Get(ctx context.Context, id int64) (*domain.Article, error)
	// List returns summaries for a validated listing query.
	List(ctx context.Context, q repo.ArticleQuery) ([]domain.ArticleSummary, error)
	// Vote adds delta to the article's votes and returns the updated row.
	Vote(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

// CommentService manages comments on articles.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserService looks up users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups the API endpoints. It depends on service interfaces only.
type Handlers struct {
	topics   TopicService
	articles ArticleService
	comments CommentService
	users    UserService
}

// New constructs a Handlers bound to the given services.
func New(topics TopicService, articles ArticleService, comments CommentService, users UserService) *Handlers {
	return &Handlers{topics: topics, articles: articles, comments: comments, users: users}
}

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

// UserService provides user lookups.
type UserService struct {
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer span.End()

	out, err := repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

// Get returns the user with the given username, or NotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("username", username)),
	)
	defer span.End()

	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, userNotFound(username)
		}
		return nil, apperr.FromDB(err)
	}
	return u, nil
}

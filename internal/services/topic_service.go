package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

// TopicService lists topics.
type TopicService struct {
	DB *gorm.DB
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer span.End()

	out, err := repo.ListTopics(ctx, s.DB)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

package services

import (
	"golang.org/x/text/cases"

	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

// Listing defaults.
const (
	DefaultSortBy = repo.SortCreatedAt
	DefaultOrder  = "desc"
)

// ParseArticleListParams validates the raw sort_by, order and topic query
// values and returns the query to run. Empty values take the defaults
// (created_at, desc). order is matched case-insensitively; sort_by must be
// an exact allow-listed column name. topic is passed through unchecked: an
// unknown topic just matches nothing.
func ParseArticleListParams(sortBy, order, topic string) (repo.ArticleQuery, error) {
	q := repo.ArticleQuery{Topic: topic, SortBy: DefaultSortBy, Desc: true}

	if sortBy != "" {
		k := repo.SortKey(sortBy)
		if !k.Valid() {
			return repo.ArticleQuery{}, ErrInvalidSortBy
		}
		q.SortBy = k
	}

	if order == "" {
		order = DefaultOrder
	}
	// Casers carry state, so each call gets its own.
	switch cases.Fold().String(order) {
	case "asc":
		q.Desc = false
	case "desc":
		q.Desc = true
	default:
		return repo.ArticleQuery{}, ErrInvalidOrder
	}
	return q, nil
}

package services

import (
	"errors"
	"testing"

	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

func TestParseArticleListParams(t *testing.T) {
	cases := []struct {
		name    string
		sortBy  string
		order   string
		tpc     string
		want    repo.ArticleQuery
		wantErr error
	}{
		{name: "defaults", want: repo.ArticleQuery{SortBy: repo.SortCreatedAt, Desc: true}},
		{name: "votes asc", sortBy: "votes", order: "asc", want: repo.ArticleQuery{SortBy: repo.SortVotes}},
		{name: "upper order", sortBy: "title", order: "ASC", want: repo.ArticleQuery{SortBy: repo.SortTitle}},
		{name: "mixed order", order: "DeSc", want: repo.ArticleQuery{SortBy: repo.SortCreatedAt, Desc: true}},
		{name: "comment_count", sortBy: "comment_count", want: repo.ArticleQuery{SortBy: repo.SortCommentCount, Desc: true}},
		{name: "topic passes through", tpc: "not-a-topic", want: repo.ArticleQuery{Topic: "not-a-topic", SortBy: repo.SortCreatedAt, Desc: true}},
		{name: "unknown column", sortBy: "body", wantErr: ErrInvalidSortBy},
		{name: "injection attempt", sortBy: "votes; DROP TABLE articles", wantErr: ErrInvalidSortBy},
		{name: "sort_by is case sensitive", sortBy: "VOTES", wantErr: ErrInvalidSortBy},
		{name: "bad order", order: "sideways", wantErr: ErrInvalidOrder},
		{name: "padded order", order: " asc", wantErr: ErrInvalidOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseArticleListParams(tc.sortBy, tc.order, tc.tpc)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v; want %+v", got, tc.want)
			}
		})
	}
}

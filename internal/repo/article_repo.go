package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// SortKey names a column article listings may be ordered by.
type SortKey string

// Allowed sort keys. Anything else is rejected before a query is built.
const (
	SortCreatedAt    SortKey = "created_at"
	SortTitle        SortKey = "title"
	SortVotes        SortKey = "votes"
	SortAuthor       SortKey = "author"
	SortTopic        SortKey = "topic"
	SortArticleID    SortKey = "article_id"
	SortCommentCount SortKey = "comment_count"
)

// sortColumns maps each key to the column it orders by. Identifiers never
// come from request text, only from this table.
var sortColumns = map[SortKey]clause.Column{
	SortCreatedAt:    {Table: "articles", Name: "created_at"},
	SortTitle:        {Table: "articles", Name: "title"},
	SortVotes:        {Table: "articles", Name: "votes"},
	SortAuthor:       {Table: "articles", Name: "author"},
	SortTopic:        {Table: "articles", Name: "topic"},
	SortArticleID:    {Table: "articles", Name: "article_id"},
	SortCommentCount: {Name: "comment_count"},
}

// Valid reports whether k is in the allow-list.
func (k SortKey) Valid() bool {
	_, ok := sortColumns[k]
	return ok
}

// SortKeys returns the allow-list in a stable order.
func SortKeys() []SortKey {
	return []SortKey{SortCreatedAt, SortTitle, SortVotes, SortAuthor, SortTopic, SortArticleID, SortCommentCount}
}

// ArticleQuery holds validated listing parameters.
type ArticleQuery struct {
	Topic  string // empty means all topics
	SortBy SortKey
	Desc   bool
}

const summaryColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

// ListArticles returns article summaries with their comment counts in a
// single query. Rows are ordered by q.SortBy, then article_id in the same
// direction so equal keys come back in a stable order.
//
// An unknown topic simply yields an empty slice.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleQuery) ([]domain.ArticleSummary, error) {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort key %q", q.SortBy)
	}

	tx := db.WithContext(ctx).
		Table("articles").
		Select(summaryColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id")
	if q.Topic != "" {
		tx = tx.Where("articles.topic = ?", q.Topic)
	}

	out := []domain.ArticleSummary{}
	err := tx.
		Group("articles.article_id").
		Order(clause.OrderByColumn{Column: col, Desc: q.Desc}).
		Order(clause.OrderByColumn{Column: sortColumns[SortArticleID], Desc: q.Desc}).
		Scan(&out).Error
	return out, err
}

// GetArticle fetches a single article by id, or ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Where("article_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ArticleExists reports whether an article with the given id exists.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// IncrementArticleVotes adds delta to the article's votes in the database
// (votes = votes + delta) and returns the updated row. Negative deltas
// decrement. Returns ErrNotFound if the article does not exist.
//
// Run it inside a transaction when the read-back must observe exactly this
// update.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetArticle(ctx, db, id)
}

// CreateArticle inserts a, leaving associations alone. An empty image URL
// is replaced with DefaultArticleImgURL.
func CreateArticle(ctx context.Context, db *gorm.DB, a *domain.Article) error {
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = domain.DefaultArticleImgURL
	}
	return db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

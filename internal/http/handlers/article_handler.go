// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                (list, filter by topic, sort)
//   - GET    /articles/{article_id}   (single article)
//   - PATCH  /articles/{article_id}   (vote)
package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/services"
)

const (
	msgInvalidArticleID = "Invalid article id format"
	msgInvalidVote      = "Invalid vote value"
)

//
// DTOs
//

// ArticlesResponse wraps an article listing.
type ArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// VoteRequest is the JSON payload for voting on an article.
//
// IncVotes is kept raw so that strings, booleans and null can be told apart
// from numbers.
type VoteRequest struct {
	// IncVotes is added to the article's votes; negative values decrement.
	IncVotes json.RawMessage `json:"inc_votes" swaggertype:"integer" example:"-1"`
}

// voteDelta extracts inc_votes as a whole JSON number within the 32-bit
// range. Integral forms such as 1e2 and 2.0 are accepted.
func (r VoteRequest) voteDelta() (int, error) {
	raw := bytes.TrimSpace(r.IncVotes)
	if len(raw) == 0 {
		return 0, apperr.BadRequest(msgInvalidVote)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, apperr.Wrap(apperr.KindBadInput, msgInvalidVote, err)
	}
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f ||
		f < math.MinInt32 || f > math.MaxInt32 {
		return 0, apperr.BadRequest(msgInvalidVote)
	}
	return int(f), nil
}

//
// Handlers
//

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns article summaries with comment counts. Unknown topics yield an empty list.
// @Tags        Articles
// @Produce     json
// @Param       topic    query  string  false  "Topic slug filter"  example(mitch)
// @Param       sort_by  query  string  false  "Sort column"  Enums(created_at, title, votes, author, topic, article_id, comment_count)  default(created_at)
// @Param       order    query  string  false  "Sort direction (case-insensitive)"  Enums(asc, desc)  default(desc)
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid sort_by or order"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	q, err := services.ParseArticleListParams(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		fail(c, err)
		return
	}
	articles, err := h.articles.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid article id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id", msgInvalidArticleID)
	if err != nil {
		fail(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// PatchArticle godoc
// @ID          patchArticle
// @Summary     Vote on an article
// @Description Atomically adds inc_votes to the article's votes and returns the updated article.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                   true  "Article ID"  example(1)
// @Param       body        body  handlers.VoteRequest  true  "Vote payload"
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) PatchArticle(c *gin.Context) {
	id, err := pathID(c, "article_id", msgInvalidArticleID)
	if err != nil {
		fail(c, err)
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.KindBadInput, msgInvalidVote, err))
		return
	}
	delta, err := req.voteDelta()
	if err != nil {
		fail(c, err)
		return
	}

	a, err := h.articles.Vote(c.Request.Context(), id, delta)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /articles/{article_id}/comments  (list, newest first)
//   - POST   /articles/{article_id}/comments  (create)
//   - DELETE /comments/{comment_id}           (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

const msgInvalidCommentID = "Invalid comment id format"

// CommentsResponse wraps an article's comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CreateCommentRequest is the JSON payload for posting a comment. Other
// fields in the body are ignored.
type CreateCommentRequest struct {
	// Username of an existing user.
	Username string `json:"username" example:"butter_bridge"`
	// Body is the comment text.
	Body string `json:"body" example:"Great read!"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Tags        Comments
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid article id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := pathID(c, "article_id", msgInvalidArticleID)
	if err != nil {
		fail(c, err)
		return
	}
	comments, err := h.comments.ListForArticle(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// PostComment godoc
// @ID          postComment
// @Summary     Comment on an article
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                            true  "Article ID"  example(1)
// @Param       body        body  handlers.CreateCommentRequest  true  "Comment payload"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or missing fields"
// @Failure     404  {object}  handlers.ErrorResponse  "User or article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	id, err := pathID(c, "article_id", msgInvalidArticleID)
	if err != nil {
		fail(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.KindBadInput, "", err))
		return
	}

	cm, err := h.comments.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"  example(1)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid comment id"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id", msgInvalidCommentID)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// TopicsResponse wraps the topic list.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

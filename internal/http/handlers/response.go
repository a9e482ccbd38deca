package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
)

// ErrorResponse is the body of every error reply.
//
// This struct is used in OpenAPI documentation via Swagger annotations; the
// body itself is written by middleware.ErrorHandler.
type ErrorResponse struct {
	// Human-readable message (safe to show to users)
	Msg string `json:"msg" example:"Article with id 10000 not found"`
}

// fail records err on the context and aborts the chain. The error
// middleware turns it into a status code and {"msg"} body.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// pathID parses a path parameter as a base-10 integer id. Anything else
// (letters, decimals, empty, out of int64 range) is a BadInput carrying msg.
func pathID(c *gin.Context, name, msg string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindBadInput, msg, err)
	}
	return id, nil
}

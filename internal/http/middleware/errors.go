package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Moldovia-Peach/my-nc-news/internal/apperr"
)

// ErrorHandler renders errors that handlers attached with c.Error.
//
// It runs after the handler chain. The last recorded error is passed
// through apperr.FromDB, so raw driver errors that reached the HTTP layer
// still get their SQLSTATE mapping. The reply is always {"msg": ...}:
//   - structured errors use their own message or the per-status default;
//   - anything else is a 500 with a generic message.
//
// 5xx replies are logged with the cause; clients never see it.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := apperr.FromDB(c.Errors.Last().Err)
		ae, ok := apperr.As(err)
		if !ok {
			ae = apperr.Internal(err)
		}
		status := ae.Status()

		if status >= http.StatusInternalServerError {
			LoggerFrom(c).Error().Err(ae).Int("status", status).Msg("api error")
		}
		apiErrors.WithLabelValues(statusLabel(status), ae.Kind.String()).Inc()

		c.AbortWithStatusJSON(status, gin.H{"msg": ae.Message()})
	}
}

// NotFound answers requests that matched no route.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiErrors.WithLabelValues(statusLabel(http.StatusNotFound), "no_route").Inc()
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"msg": apperr.KindNotFound.DefaultMessage()})
	}
}

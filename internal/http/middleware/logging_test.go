package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/api/topics", func(c *gin.Context) {
		v, ok := c.Get(requestIDKey)
		require.True(t, ok)
		require.NotEmpty(t, v)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set(strings.ToLower(requestIDHeader), "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestLogger_LevelsByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/api/articles/:article_id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("Invalid vote value"))
		c.Status(http.StatusBadRequest)
	})
	r.GET("/api/down", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, p := range []string{"/api/articles/1", "/api/missing", "/api/broken", "/api/down"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var entries []map[string]any
	for _, ln := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(ln), &m))
		entries = append(entries, m)
	}

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "/api/articles/:article_id", entries[0]["path"])

	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "/api/missing", entries[1]["path"], "unmatched routes log the raw path")

	assert.Equal(t, "warn", entries[2]["level"])
	assert.Contains(t, entries[2]["errors"], "Invalid vote value")

	assert.Equal(t, "error", entries[3]["level"])
	for _, e := range entries {
		assert.NotEmpty(t, e["request_id"])
		assert.Equal(t, "request", e["message"])
	}
}

func TestLogger_AttachesLoggerToRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ctx", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("from ctx")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
	req.Header.Set(requestIDHeader, "rid-ctx")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"rid-ctx","method":"GET","path":"/ctx"`)
	assert.Contains(t, buf.String(), `"message":"from ctx"`)
}

func TestRecovery_PanicsToJSON500AndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Internal Server Error"}`, w.Body.String())
	assert.Contains(t, buf.String(), `"message":"panic recovered"`)
	assert.Contains(t, buf.String(), `"panic":"kaboom"`)
}

func TestRecovery_PanicAfterWrite_NoJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/late", func(c *gin.Context) {
		c.String(http.StatusOK, "partial-body")
		panic("late kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/late", nil))

	assert.NotContains(t, w.Body.String(), `"msg"`)
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestLoggerFrom_FallbackAndRequestScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buf := captureLogger(t)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/use", func(c *gin.Context) {
		LoggerFrom(c).Info().Msg("fallback")
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/use", nil))
	assert.Contains(t, buf.String(), `"message":"fallback"`)
	assert.NotContains(t, buf.String(), `"request_id"`)

	buf = captureLogger(t)
	r = gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/use", func(c *gin.Context) {
		LoggerFrom(c).Info().Msg("scoped")
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/use", nil))
	assert.Contains(t, buf.String(), `"message":"scoped"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "x", asString("x"))
	assert.Equal(t, "", asString(123))

	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "abcde…", truncate("abcdefgh", 5))
	assert.Equal(t, "abc", truncate("abc", 0))
}

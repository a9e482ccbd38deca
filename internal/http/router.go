// Package httpapi wires the HTTP transport (Gin) to the news services,
// middleware and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, access logging, panic recovery, metrics, CORS,
// compression, security headers and error rendering.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/docs"
	"github.com/Moldovia-Peach/my-nc-news/internal/config"
	"github.com/Moldovia-Peach/my-nc-news/internal/http/handlers"
	"github.com/Moldovia-Peach/my-nc-news/internal/http/middleware"
	"github.com/Moldovia-Peach/my-nc-news/internal/services"
)

const (
	maxBodyBytes  = 1 << 20
	healthTimeout = 2 * time.Second
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: ops routes (/health, /metrics, optional /swagger) at the root and
// the news API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry
//  2. RequestID
//  3. Logger (request-scoped zerolog logger)
//  4. Recovery
//  5. Body size limit
//  6. Metrics
//  7. CORS, optional gzip, security headers
//  8. ErrorHandler, innermost, so it sees every error a handler records
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// Unsupported methods on known paths are plain 404s.
	r.HandleMethodNotAllowed = false

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(cfg.CORS))
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStore:    cfg.Security.NoStore,
	}))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(middleware.NotFound())

	// Ops
	r.GET("/health", health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(
		&services.TopicService{DB: db},
		&services.ArticleService{DB: db},
		&services.CommentService{DB: db},
		&services.UserService{DB: db},
	)

	base := cfg.APIBasePath
	if base == "" {
		base = "/"
	}
	r.GET(base, h.GetAPI)
	api := groupWithPrefix(r, base)
	{
		api.GET("/topics", h.ListTopics)

		api.GET("/articles", h.ListArticles)
		api.GET("/articles/:article_id", h.GetArticle)
		api.PATCH("/articles/:article_id", h.PatchArticle)

		api.GET("/articles/:article_id/comments", h.ListComments)
		api.POST("/articles/:article_id/comments", h.PostComment)
		api.DELETE("/comments/:comment_id", h.DeleteComment)

		api.GET("/users", h.ListUsers)
		api.GET("/users/:username", h.GetUser)
	}
}

// corsMiddleware allows every origin when none are configured, otherwise
// only the listed ones. Credentials are never allowed.
func corsMiddleware(c config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	return cors.New(cc)
}

// health reports 200 when the database answers a ping, 503 otherwise.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// limitBody caps the request body at maxBytes; reads past the cap fail and
// surface as 400s from the JSON binders.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

// Command server runs the NC News JSON API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Moldovia-Peach/my-nc-news/internal/config"
	httpapi "github.com/Moldovia-Peach/my-nc-news/internal/http"
	"github.com/Moldovia-Peach/my-nc-news/internal/observability"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
	"github.com/Moldovia-Peach/my-nc-news/internal/sysutil"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title       NC News API
// @version     1.0
// @description Topics, articles, comments and users for a news aggregation site.
// @BasePath    /api
// @schemes     http https

func main() {
	appEnv := sysutil.FirstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"), "development")
	loaded := sysutil.LoadEnv("", appEnv)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, nil)
	log.Info().Str("env", appEnv).Strs("env_files", loaded).Str("version", version).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.Open(cfg.DBOptions())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open database")
	}
	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := repo.Close(db); err != nil {
		log.Error().Err(err).Msg("close database")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("server exited")
}

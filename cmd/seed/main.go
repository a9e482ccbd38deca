// Command seed resets the configured database and loads the fixture
// dataset, optionally followed by generated demo articles.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Moldovia-Peach/my-nc-news/internal/config"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
	"github.com/Moldovia-Peach/my-nc-news/internal/seed"
	"github.com/Moldovia-Peach/my-nc-news/internal/sysutil"
)

func main() {
	fakeN := flag.Int("fake", 0, "number of generated articles to add after the fixtures")
	fakeSeed := flag.Int64("fake-seed", 1, "random seed for generated content")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall time limit")
	flag.Parse()

	appEnv := sysutil.FirstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"), "development")
	sysutil.LoadEnv("", appEnv)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, nil)

	data, err := seed.TestData()
	if err != nil {
		log.Fatal().Err(err).Msg("load fixtures")
	}
	if *fakeN > 0 {
		if data, err = seed.Fake(data, *fakeN, *fakeSeed); err != nil {
			log.Fatal().Err(err).Msg("generate fake data")
		}
	}

	db, err := repo.Open(cfg.DBOptions())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open database")
	}
	defer func() { _ = repo.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Info().Str("env", appEnv).Str("driver", cfg.DB.Driver).Int("fake", *fakeN).Msg("seeding")
	if err := seed.Run(ctx, db, data); err != nil {
		log.Error().Err(err).Msg("seed failed")
		_ = repo.Close(db)
		os.Exit(1)
	}
}

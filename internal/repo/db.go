// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and PostgreSQL, plus schema migration.
//
// The returned *gorm.DB is the single process-wide handle: it is opened at
// startup, injected into services, and closed at shutdown by the caller.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects and tunes the database connection.
type Options struct {
	Driver          string        // sqlite|postgres
	Path            string        // SQLite file path
	DSN             string        // PostgreSQL DSN or URL
	MaxOpenConns    int           // pool cap
	MaxIdleConns    int           // idle pool cap
	ConnMaxLifetime time.Duration // recycle connections after this long
	SlowThreshold   time.Duration // queries slower than this are logged at warn
	Tracing         bool          // install the GORM OpenTelemetry plugin
}

// Open dispatches on opts.Driver.
func Open(opts Options) (*gorm.DB, error) {
	switch strings.ToLower(opts.Driver) {
	case DriverPostgres:
		return OpenPostgres(opts)
	case DriverSQLite, "":
		return OpenSQLite(opts)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", opts.Driver)
	}
}

// OpenSQLite opens (or creates) a SQLite database with foreign keys enforced.
func OpenSQLite(opts Options) (*gorm.DB, error) {
	path := opts.Path
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path must not be empty")
	}
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig(opts))
	if err != nil {
		return nil, err
	}

	// PRAGMAs that are not connection-scoped.
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")

	if err := finish(db, opts); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenPostgres opens a PostgreSQL database through pgx.
func OpenPostgres(opts Options) (*gorm.DB, error) {
	if strings.TrimSpace(opts.DSN) == "" {
		return nil, errors.New("postgres DSN must not be empty")
	}
	db, err := gorm.Open(postgres.Open(opts.DSN), gormConfig(opts))
	if err != nil {
		return nil, err
	}
	if err := finish(db, opts); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the four tables in dependency order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(domain.All()...)
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN appends per-connection pragmas so every pooled connection
// enforces foreign keys and waits on locks.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func gormConfig(opts Options) *gorm.Config {
	return &gorm.Config{
		Logger:         NewLogger(opts.SlowThreshold),
		TranslateError: true,
	}
}

func finish(db *gorm.DB, opts Options) error {
	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return fmt.Errorf("gorm tracing plugin: %w", err)
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := opts.MaxIdleConns
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	lifetime := opts.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(lifetime)
	return nil
}

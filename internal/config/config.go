// Package config reads the news API settings from the environment, fills in
// defaults and rejects invalid combinations. It centralizes server timeouts,
// logging, database selection and pooling, web protection and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

// CORSConfig lists the browser origins allowed to call the API; empty means any.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig controls the Strict-Transport-Security and Cache-Control
// response headers.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
	NoStore    bool // CACHE_NO_STORE
}

// DBConfig selects and tunes the database connection.
type DBConfig struct {
	Driver          string        // DB_DRIVER: sqlite|postgres
	Path            string        // DB_PATH (sqlite)
	URL             string        // DATABASE_URL (postgres), falls back to PGDATABASE
	MaxOpenConns    int           // DB_MAX_OPEN_CONNS
	MaxIdleConns    int           // DB_MAX_IDLE_CONNS
	ConnMaxLifetime time.Duration // DB_CONN_MAX_LIFETIME
	SlowThreshold   time.Duration // DB_SLOW_THRESHOLD
	AutoMigrate     bool          // AUTO_MIGRATE
}

// OTELConfig controls trace export over OTLP/gRPC.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config is the full runtime configuration of the server and seeder.
type Config struct {
	// Server
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool
	SwaggerEnabled bool
	APIBasePath    string
	GzipEnabled    bool

	DB DBConfig

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	OTEL OTELConfig
}

// MustLoad is Load for callers that cannot continue without a valid config.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds a Config from the environment. Values are normalized
// (log level aliases, gin mode, driver aliases) before validation.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "9090"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),
		GzipEnabled:    getbool("GZIP_ENABLED", false),

		DB: DBConfig{
			Driver:          strings.ToLower(getenv("DB_DRIVER", repo.DriverSQLite)),
			Path:            getenv("DB_PATH", "nc_news.db"),
			URL:             databaseURL(),
			MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getdur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			SlowThreshold:   getdur("DB_SLOW_THRESHOLD", 200*time.Millisecond),
			AutoMigrate:     getbool("AUTO_MIGRATE", true),
		},

		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
			NoStore:    getbool("CACHE_NO_STORE", false),
		},

		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "nc-news"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	if cfg.DB.Driver == "sqlite3" {
		cfg.DB.Driver = repo.DriverSQLite
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 ||
		cfg.IdleTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	switch cfg.DB.Driver {
	case repo.DriverSQLite:
		if strings.TrimSpace(cfg.DB.Path) == "" {
			return cfg, errors.New("DB_PATH must not be empty")
		}
	case repo.DriverPostgres:
		if strings.TrimSpace(cfg.DB.URL) == "" {
			return cfg, errors.New("DATABASE_URL or PGDATABASE must be set for postgres")
		}
	default:
		return cfg, errors.New("DB_DRIVER must be one of: sqlite, postgres")
	}
	if cfg.DB.MaxOpenConns < 1 {
		return cfg, errors.New("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if cfg.DB.MaxIdleConns < 0 {
		return cfg, errors.New("DB_MAX_IDLE_CONNS must be >= 0")
	}
	if cfg.DB.ConnMaxLifetime < 0 || cfg.DB.SlowThreshold < 0 {
		return cfg, errors.New("DB durations must be >= 0")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// DBOptions maps the database settings onto repo.Options.
func (c Config) DBOptions() repo.Options {
	return repo.Options{
		Driver:          c.DB.Driver,
		Path:            c.DB.Path,
		DSN:             c.DB.URL,
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
		SlowThreshold:   c.DB.SlowThreshold,
		Tracing:         c.OTEL.Enabled,
	}
}

// databaseURL prefers DATABASE_URL; a bare PGDATABASE becomes a keyword DSN
// and the remaining PG* variables are picked up by pgx itself.
func databaseURL() string {
	if v := getenv("DATABASE_URL", ""); v != "" {
		return v
	}
	if name := strings.TrimSpace(getenv("PGDATABASE", "")); name != "" {
		return "dbname=" + name
	}
	return ""
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath returns p with one leading slash and no trailing slash;
// the root stays "/".
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

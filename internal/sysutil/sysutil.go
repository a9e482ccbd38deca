// Package sysutil holds process-level helpers shared by the binaries under
// cmd/: global logger setup and small environment utilities.
package sysutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLogLevel configures the global zerolog level based on a string value.
// Supported values (case-insensitive): debug, info, warn, error, fatal, panic.
// Anything else selects info.
func SetLogLevel(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// SetupLogger installs the global logger. JSON lines go to w (stderr when
// nil); pretty switches to a human-readable console writer.
func SetupLogger(level string, pretty bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	SetLogLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// LoadEnv reads .env.<appEnv> and then .env from dir, if they exist.
// Variables already set in the process win; files loaded first win over
// later ones. It returns the files that were loaded.
func LoadEnv(dir, appEnv string) []string {
	var candidates []string
	if appEnv = strings.TrimSpace(appEnv); appEnv != "" {
		candidates = append(candidates, ".env."+appEnv)
	}
	candidates = append(candidates, ".env")

	var loaded []string
	for _, name := range candidates {
		p := name
		if dir != "" {
			p = strings.TrimRight(dir, "/") + "/" + name
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Warn().Err(err).Str("file", p).Msg("env file not loaded")
			continue
		}
		loaded = append(loaded, p)
	}
	return loaded
}

// FirstNonEmpty returns the first non-blank string from vals, or "".
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

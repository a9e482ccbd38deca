package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger routes GORM's logging through zerolog.
//
// Failed queries are logged at error (except record-not-found, which is an
// expected outcome for existence checks), slow queries at warn, and
// everything else at debug so it only shows with LOG_LEVEL=debug.
type gormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewLogger returns a GORM logger backed by the global zerolog logger.
func NewLogger(slowThreshold time.Duration) logger.Interface {
	if slowThreshold <= 0 {
		slowThreshold = 200 * time.Millisecond
	}
	return &gormLogger{level: logger.Warn, slowThreshold: slowThreshold}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.from(ctx).Info().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.from(ctx).Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.from(ctx).Error().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	lg := l.from(ctx)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		lg.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm query failed")
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		lg.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm slow query")
	default:
		lg.Debug().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm query")
	}
}

// from prefers a logger carried in ctx (zerolog.Ctx) over the global one.
func (l *gormLogger) from(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if lg := zerolog.Ctx(ctx); lg != nil && lg.GetLevel() != zerolog.Disabled {
			return lg
		}
	}
	return &log.Logger
}

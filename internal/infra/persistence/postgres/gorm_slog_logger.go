package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tube/config"
	deliverycontext "tube/internal/delivery/context"
	"tube/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

type gormSlogLogger struct {
	logger    *slog.Logger
	level     logger.LogLevel
	slowQuery time.Duration
}

// NewGormSlogLogger routes GORM output to slog. Query logs pick up the
// request-scoped logger from ctx so they carry the request id.
func NewGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:    baseLogger,
		level:     logger.Warn,
		slowQuery: defaultSlowQuery,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slowQuery = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, need logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < need {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "User store message", slog.String("detail", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, slow queries, and in debug mode every query.
// Lookups that found no row are expected and never logged as failures.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowQuery > 0 && elapsed > l.slowQuery

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "User store query failed", slog.String("error", err.Error())
	case slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "User store slow query", slog.Duration("threshold", l.slowQuery)
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "User store query"
	default:
		return
	}

	query, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", query),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

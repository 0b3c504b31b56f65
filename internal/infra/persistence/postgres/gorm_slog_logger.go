package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped logger so
// statements line up with the request that issued them. Bound parameters
// carry tokens, secret hashes and session state, so they are only inlined
// into the logged SQL in debug mode.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	inlineParams  bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	debug := cfg != nil && cfg.Env.Debug
	if debug {
		level = logger.Info
	}
	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "postgres"))
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
		inlineParams:  debug,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter implements gorm.ParamsFilter.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.inlineParams {
		return sql, params
	}

	return sql, nil
}

// log picks the logger of the request in ctx. Outside a request the
// request id, when present, is attached to the base logger instead.
func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	if scoped := deliverycontext.GetLogger(ctx); scoped != nil {
		return scoped.With(slog.String("component", "postgres"))
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return l.logger.With(slog.String("request_id", id))
	}

	return l.logger
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level < logger.Info || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Database notice", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level < logger.Warn || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Database warning", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level < logger.Error || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, slog.LevelError, "Database error", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("op", statementVerb(sql)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// statementVerb returns the upper-cased leading keyword, e.g. SELECT.
func statementVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToUpper(verb)
}

package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger delegates to a *slog.Logger. LevelTrace maps to
// slog.Level(-8), below slog.LevelDebug.
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a SlogLogger. It panics if logger is nil;
// a nil ctx is replaced with context.Background.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// Trace logs at LevelTrace.
func (l *SlogLogger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args) }

// Debug logs at LevelDebug.
func (l *SlogLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }

// Info logs at LevelInfo.
func (l *SlogLogger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args) }

// Warn logs at LevelWarn.
func (l *SlogLogger) Warn(msg string, args ...any) { l.log(LevelWarn, msg, args) }

// Error logs at LevelError.
func (l *SlogLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }

func (l *SlogLogger) log(level Level, msg string, args []any) {
	if !l.logger.Enabled(l.ctx, slog.Level(level)) {
		return
	}
	// skip runtime.Callers, log and the exported method
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(l.ctx, r)
}

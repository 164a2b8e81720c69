package logger

import (
	"log"
	"os"
	"sync"
)

// Logger handles structured log records. Args are alternating
// key-value pairs, as in log/slog.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger discards all records.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}

type holder struct {
	sync.RWMutex
	logger Logger
}

func (h *holder) get() Logger {
	h.RLock()
	defer h.RUnlock()
	return h.logger
}

func (h *holder) set(l Logger) {
	h.Lock()
	defer h.Unlock()
	h.logger = l
}

var defaultLogger = holder{
	logger: NewSimpleLogger(log.New(os.Stderr, "", log.LstdFlags), LevelWarn),
}

// Default returns the package-wide Logger. Unless replaced with
// SetDefault it writes warnings and errors to stderr.
func Default() Logger {
	return defaultLogger.get()
}

// SetDefault replaces the package-wide Logger. A nil l installs a
// NoOpLogger.
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.set(l)
}

// Trace logs at LevelTrace using the default Logger.
func Trace(msg string, args ...any) { Default().Trace(msg, args...) }

// Debug logs at LevelDebug using the default Logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs at LevelInfo using the default Logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs at LevelWarn using the default Logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error logs at LevelError using the default Logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

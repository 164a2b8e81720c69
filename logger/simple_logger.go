package logger

import (
	"fmt"
	"log"
	"strings"
)

// SimpleLogger writes records through a standard library *log.Logger
// in the form "LEVEL msg key=value ...".
type SimpleLogger struct {
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a SimpleLogger that drops records below level.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	return &SimpleLogger{
		logger: logger,
		level:  level,
	}
}

// Trace logs at LevelTrace.
func (l *SimpleLogger) Trace(msg string, args ...any) { l.output(LevelTrace, msg, args) }

// Debug logs at LevelDebug.
func (l *SimpleLogger) Debug(msg string, args ...any) { l.output(LevelDebug, msg, args) }

// Info logs at LevelInfo.
func (l *SimpleLogger) Info(msg string, args ...any) { l.output(LevelInfo, msg, args) }

// Warn logs at LevelWarn.
func (l *SimpleLogger) Warn(msg string, args ...any) { l.output(LevelWarn, msg, args) }

// Error logs at LevelError.
func (l *SimpleLogger) Error(msg string, args ...any) { l.output(LevelError, msg, args) }

// Enabled reports whether records at level are written.
func (l *SimpleLogger) Enabled(level Level) bool {
	return l.level != LevelOff && level >= l.level
}

func (l *SimpleLogger) output(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	// skip output and the exported method
	_ = l.logger.Output(3, formatRecord(level, msg, args))
}

func formatRecord(level Level, msg string, args []any) string {
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			_, _ = fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
		} else {
			_, _ = fmt.Fprintf(&b, " !BADKEY=%v", args[i])
		}
	}
	return b.String()
}

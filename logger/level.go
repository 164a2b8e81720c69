package logger

import "strconv"

// A Level is the severity of a log record. Records below a logger's
// level are discarded.
type Level int

// Log levels, spaced like log/slog so that a Level converts directly
// to a slog.Level.
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelOff   Level = 12
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

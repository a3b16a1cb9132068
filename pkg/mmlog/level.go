package mmlog

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record. Lower values are more
// severe; a record passes the filter when its level is at or below the
// configured threshold.
type Level int

// Severity levels, most to least severe.
const (
	LevelError Level = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the single-letter tag written into each record.
func (l Level) Tag() string {
	switch l {
	case LevelError:
		return "E"
	case LevelWarn:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	case LevelTrace:
		return "T"
	default:
		return "?"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}

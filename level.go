package xlog

import (
	"fmt"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Trace (-8) and Fatal (12).
// Fatal doubles as the "critical" level of other logging vocabularies.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

// Canonical buckets a level to the nearest canonical level at or above it.
// Anything above LevelError is Fatal.
func (l Level) Canonical() Level {
	switch {
	case l <= LevelTrace:
		return LevelTrace
	case l <= LevelDebug:
		return LevelDebug
	case l <= LevelInfo:
		return LevelInfo
	case l <= LevelWarn:
		return LevelWarn
	case l <= LevelError:
		return LevelError
	default:
		return LevelFatal
	}
}

// String returns the upper-case level name of the canonical bucket.
func (l Level) String() string {
	switch l.Canonical() {
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
	default:
		return "FATAL"
	}
}

// ParseLevel parses trace|debug|info|warn|error|fatal (case-insensitive).
// "warning", "crit" and "critical" are accepted aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal", "crit", "critical":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

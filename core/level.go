package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity of a log record. Lower values are more
// severe; a record is emitted when its level is at or below the threshold.
type Level int8

const (
	// ErrorLevel for unrecoverable errors
	ErrorLevel Level = iota
	// WarnLevel for recoverable errors
	WarnLevel
	// InfoLevel for normal significant events (default threshold)
	InfoLevel
	// DebugLevel for normal insignificant events
	DebugLevel
	// TraceLevel for implementation details
	TraceLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized input.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	ErrorLevel: "error",
	WarnLevel:  "warning",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

// String returns the lowercase display name of the level, or "?" for
// values outside the known set.
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "?"
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// Enabled reports whether a record at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel converts a level name or its numeric value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "0":
		return ErrorLevel, nil
	case "warning", "warn", "1":
		return WarnLevel, nil
	case "info", "2":
		return InfoLevel, nil
	case "debug", "3":
		return DebugLevel, nil
	case "trace", "4":
		return TraceLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

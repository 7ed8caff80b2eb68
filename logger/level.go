package logger

import (
	"github.com/philipp01105/blog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts a level name or number to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

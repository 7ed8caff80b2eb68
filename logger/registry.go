package logger

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/philipp01105/blog/core"
	"github.com/philipp01105/blog/handler/streamhandler"
)

// defaultLogger holds the process-wide destination and threshold. Reads
// are a single atomic load; writes are expected only at startup.
var defaultLogger atomic.Pointer[Logger]

func init() {
	// Standard error at info until Init is called
	defaultLogger.Store(newStreamLogger(nil, core.InfoLevel))
}

func newStreamLogger(w io.Writer, threshold core.Level) *Logger {
	h := streamhandler.New(streamhandler.Config{Writer: w})
	return NewBuilder().
		WithHandler(h).
		WithLevel(threshold).
		Build()
}

// Init sets the process-wide destination and threshold, then logs one
// info record announcing the threshold. A nil w means standard error.
// The logger never closes w. Init must not be called concurrently with
// itself.
func Init(w io.Writer, threshold Level) {
	install(w, threshold)
}

func install(w io.Writer, threshold Level) {
	l := newStreamLogger(w, threshold)
	defaultLogger.Store(l)

	if Disabled || core.InfoLevel > threshold {
		return
	}
	l.logf(1, core.InfoLevel, "logger initialized (level %d - %s)", int(threshold), threshold)
}

// Default returns the process-wide logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger with l. A nil l is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

// Destination returns the process-wide destination. It is os.Stderr
// until Init installs another writer, and also whenever the default
// logger's handler does not expose one.
func Destination() io.Writer {
	if wp, ok := Default().handler.(interface{ Writer() io.Writer }); ok {
		return wp.Writer()
	}
	return os.Stderr
}

// Threshold returns the process-wide threshold (InfoLevel until Init).
func Threshold() Level {
	return Default().level
}

// Enabled reports whether a record at level would pass the process-wide
// threshold.
func Enabled(level Level) bool {
	return Default().Enabled(level)
}

// Package-level functions using the default logger

// Log logs a formatted message at level using the default logger
func Log(level Level, format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || level > l.level {
		return
	}
	l.logf(0, level, format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || core.ErrorLevel > l.level {
		return
	}
	l.logf(0, core.ErrorLevel, format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || core.WarnLevel > l.level {
		return
	}
	l.logf(0, core.WarnLevel, format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || core.InfoLevel > l.level {
		return
	}
	l.logf(0, core.InfoLevel, format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || core.DebugLevel > l.level {
		return
	}
	l.logf(0, core.DebugLevel, format, args...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	l := defaultLogger.Load()
	if Disabled || core.TraceLevel > l.level {
		return
	}
	l.logf(0, core.TraceLevel, format, args...)
}

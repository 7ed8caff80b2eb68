package logger

import (
	"fmt"
	"io"

	"github.com/philipp01105/blog/core"
	"github.com/philipp01105/blog/handler"
	"github.com/philipp01105/blog/handler/streamhandler"
)

// Logger is a threshold plus the handler records are written through (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:         core.InfoLevel, // Default level
		includeCaller: true,
		callerSkip:    3, // Default skip for getCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables or disables capturing the call site
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// AddCallerSkip skips n additional stack frames when capturing the call
// site, for helpers that wrap the Logger.
func (b *Builder) AddCallerSkip(n int) *Builder {
	b.callerSkip += n
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// Level returns the logger's threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// Handler returns the logger's handler
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Enabled reports whether a record at level would be written. Use it to
// guard call sites whose arguments are expensive to build.
func (l *Logger) Enabled(level core.Level) bool {
	return !Disabled && l.handler != nil && level <= l.level
}

// Log formats and writes a record if level passes the threshold. A
// filtered call returns before any argument is formatted.
func (l *Logger) Log(level core.Level, format string, args ...any) {
	if Disabled || level > l.level {
		return
	}
	l.logf(0, level, format, args...)
}

// logf builds and writes the record. skip counts frames between the
// exported entry point and logf beyond the usual one.
func (l *Logger) logf(skip int, level core.Level, format string, args ...any) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = fmt.Sprintf(format, args...)
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip + skip)
	}

	// Write failures are counted by the handler and never reach the caller
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// EmitAt writes a record with an explicit location through the logger's
// handler, bypassing the threshold.
func (l *Logger) EmitAt(file string, line int, level core.Level, format string, args ...any) {
	if l.handler == nil {
		return
	}
	emit(l.handler, file, line, level, format, args...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	if Disabled || core.ErrorLevel > l.level {
		return
	}
	l.logf(0, core.ErrorLevel, format, args...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...any) {
	if Disabled || core.WarnLevel > l.level {
		return
	}
	l.logf(0, core.WarnLevel, format, args...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	if Disabled || core.InfoLevel > l.level {
		return
	}
	l.logf(0, core.InfoLevel, format, args...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...any) {
	if Disabled || core.DebugLevel > l.level {
		return
	}
	l.logf(0, core.DebugLevel, format, args...)
}

// Tracef logs a formatted trace message
func (l *Logger) Tracef(format string, args ...any) {
	if Disabled || core.TraceLevel > l.level {
		return
	}
	l.logf(0, core.TraceLevel, format, args...)
}

// Emit writes one record to w regardless of any threshold, using file
// and line as the location. A nil w means standard error. Errors are
// dropped.
func Emit(w io.Writer, file string, line int, level core.Level, format string, args ...any) {
	emit(streamhandler.New(streamhandler.Config{Writer: w}), file, line, level, format, args...)
}

func emit(h handler.Handler, file string, line int, level core.Level, format string, args ...any) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = fmt.Sprintf(format, args...)
	entry.Caller = core.At(file, line)

	_ = h.Handle(entry)
	core.PutEntry(entry)
}

package handler

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/blog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Handler, so code written against log/slog emits blog lines. Attributes
// are rendered into the message text as key=value pairs.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   string // pre-rendered attrs from WithAttrs
	group   string // dotted prefix from WithGroup
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. Records above threshold are discarded.
func NewSlogHandler(h Handler, threshold core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   threshold,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.level)
}

// Handle converts the record to an Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	if !record.Time.IsZero() {
		entry.Time = record.Time
	} else {
		entry.Time = time.Now()
	}
	entry.Level = slogLevelToCore(record.Level)
	entry.Caller = core.CallerFromPC(record.PC)

	if s.attrs == "" && record.NumAttrs() == 0 {
		entry.Message = record.Message
		return s.handler.Handle(entry)
	}

	var buf bytes.Buffer
	buf.WriteString(record.Message)
	buf.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&buf, s.group, a)
		return true
	})
	entry.Message = buf.String()

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var buf bytes.Buffer
	buf.WriteString(s.attrs)
	for _, a := range attrs {
		appendSlogAttr(&buf, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   buf.String(),
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   s.group + name + ".",
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything more
// verbose than slog.LevelDebug is treated as trace.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr renders a, flattening groups into dotted keys.
func appendSlogAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendSlogAttr(buf, prefix, ga)
		}
		return
	}

	appendKeyValue(buf, prefix+a.Key, a.Value.String())
}

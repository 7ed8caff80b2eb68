package handler

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/blog/core"
)

// ZapCore implements zapcore.Core on top of a Handler, so a *zap.Logger
// built with zap.New(handler.NewZapCore(h, level)) emits blog lines.
// Fields are rendered into the message text as sorted key=value pairs.
type ZapCore struct {
	zapcore.LevelEnabler
	handler Handler
	context string // pre-rendered fields from With
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a zapcore.Core that forwards entries at or below
// threshold to h.
func NewZapCore(h Handler, threshold core.Level) *ZapCore {
	return &ZapCore{
		LevelEnabler: zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return zapLevelToCore(l).Enabled(threshold)
		}),
		handler: h,
	}
}

// With returns a copy of the core carrying additional context fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	var buf bytes.Buffer
	buf.WriteString(c.context)
	appendZapFields(&buf, fields)
	return &ZapCore{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		context:      buf.String(),
	}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry to an Entry and passes it to the handler.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = zapLevelToCore(ent.Level)
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}

	if c.context == "" && len(fields) == 0 {
		entry.Message = ent.Message
	} else {
		var buf bytes.Buffer
		buf.WriteString(ent.Message)
		buf.WriteString(c.context)
		appendZapFields(&buf, fields)
		entry.Message = buf.String()
	}

	return c.handler.Handle(entry)
}

// Sync is a no-op; every Write is already synchronous.
func (c *ZapCore) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal all map to error.
func zapLevelToCore(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

func appendZapFields(buf *bytes.Buffer, fields []zapcore.Field) {
	if len(fields) == 0 {
		return
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		appendKeyValue(buf, k, fmt.Sprint(enc.Fields[k]))
	}
}

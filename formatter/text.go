package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/blog/core"
)

// TextFormatter renders an entry as a single line:
//
//	[2026-01-15 12:00:00] [info] main.go:42: message
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.ErrorLevel: "[error] ",
	core.WarnLevel:  "[warning] ",
	core.InfoLevel:  "[info] ",
	core.DebugLevel: "[debug] ",
	core.TraceLevel: "[trace] ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if TimestampsCompiled && !f.OmitTimestamp {
		t := entry.Time
		if f.UTC {
			t = t.UTC()
		} else {
			t = t.Local()
		}
		buf.WriteByte('[')
		// AppendFormat into the spare capacity avoids a string allocation
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteString("] ")
	}

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[?] ")
	}

	buf.WriteString(entry.Caller.Location())
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	buf.WriteString(": ")

	buf.WriteString(trimNewlines(entry.Message))
	buf.WriteByte('\n')
}

// trimNewlines strips trailing line terminators so every record ends
// with exactly one newline.
func trimNewlines(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

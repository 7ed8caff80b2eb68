// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which writes into a caller-provided bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer
// it, so a record is rendered into a pooled buffer and handed to the
// destination in a single Write.
//
// TextFormatter produces exactly one line per record:
//
//	[YYYY-MM-DD HH:MM:SS] [level] file:line: message
//
// Only trailing line terminators are stripped from the message, so the
// one-line guarantee covers the terminator; a newline inside the message
// is written as is and produces a second physical line.
//
// The timestamp is local time at second resolution. It can be dropped
// per formatter with Config.OmitTimestamp, or compiled out entirely by
// building with -tags blog_notimestamp.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter

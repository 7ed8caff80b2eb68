package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/blog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// DefaultTimestampFormat renders local wall-clock time at second resolution.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Config holds common formatter configuration
type Config struct {
	// OmitTimestamp drops the leading "[timestamp] " even when timestamps
	// are compiled in.
	OmitTimestamp bool
	// TimestampFormat specifies the time format (empty for DefaultTimestampFormat)
	TimestampFormat string
	// UTC renders timestamps in UTC instead of local time
	UTC bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

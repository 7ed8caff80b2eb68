package streamhandler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/blog/core"
	"github.com/philipp01105/blog/formatter"
	"github.com/philipp01105/blog/handler"
)

// ErrWriterPanic wraps a panic raised by the destination's Write method.
var ErrWriterPanic = errors.New("destination write panicked")

// Config holds configuration for a stream handler
type Config struct {
	// Writer to write to. The handler never closes it. A nil Writer means
	// standard error, resolved on every write so a redirected os.Stderr
	// is honoured.
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// StreamHandler renders each entry as one line and writes it to a single
// destination with one Write call, holding the destination's lock for
// the duration of that write.
type StreamHandler struct {
	writer          io.Writer
	lock            sync.Locker // nil when writer is nil
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
}

// New creates a new stream handler
func New(cfg Config) *StreamHandler {
	applyDefaults(&cfg)

	h := &StreamHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	if h.writer != nil {
		h.lock = lockFor(h.writer)
	}

	// Cache BufferFormatter for the pooled-buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Writer returns the effective destination.
func (h *StreamHandler) Writer() io.Writer {
	if h.writer == nil {
		return os.Stderr
	}
	return h.writer
}

// Handle formats the entry and writes it to the destination. Errors are
// returned for bookkeeping only; callers in the logger package drop them.
func (h *StreamHandler) Handle(entry *core.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWriterPanic, r)
		}
		if err != nil {
			h.stats.IncrementFailed()
		} else {
			h.stats.IncrementProcessed()
		}
	}()

	w, lock := h.writer, h.lock
	if w == nil {
		w = os.Stderr
		lock = lockFor(w)
	}

	if h.bufferFormatter != nil {
		buf := formatter.GetBuffer()
		h.bufferFormatter.FormatEntry(entry, buf)
		err = writeLocked(lock, w, buf.Bytes())
		formatter.PutBuffer(buf)
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	return writeLocked(lock, w, data)
}

// writeLocked performs the single Write of a record under lock.
func writeLocked(lock sync.Locker, w io.Writer, p []byte) error {
	lock.Lock()
	defer lock.Unlock()

	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

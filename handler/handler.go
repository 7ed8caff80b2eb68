package handler

import (
	"github.com/philipp01105/blog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes a single log entry. The entry is owned by the caller
	// and may be recycled as soon as Handle returns.
	Handle(entry *core.Entry) error
}

// StatsProvider is implemented by handlers that track write statistics.
type StatsProvider interface {
	Stats() Snapshot
}

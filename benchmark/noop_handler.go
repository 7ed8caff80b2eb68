package benchmark

import (
	"github.com/philipp01105/blog/core"
	"github.com/philipp01105/blog/handler"
)

// noopHandler isolates logger overhead from formatting and I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

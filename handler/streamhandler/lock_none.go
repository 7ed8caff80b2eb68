//go:build blog_nolock

package streamhandler

import (
	"io"
	"sync"
)

// Locking reports whether writes are serialized per destination. This
// build has no locking and is unsafe when several goroutines log to the
// same destination; use it only for single-goroutine programs or when
// the destination is synchronized externally.
const Locking = false

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func lockFor(io.Writer) sync.Locker {
	return noLock{}
}

//go:build !blog_nolock

package streamhandler

import (
	"io"
	"reflect"
	"sync"
)

// Locking reports whether writes are serialized per destination.
const Locking = true

const lockStripes = 64

// stripes maps destinations onto a fixed set of mutexes by address, so
// the same destination always resolves to the same mutex and short-lived
// destinations leave nothing behind.
var stripes [lockStripes]sync.Mutex

// lockFor returns the mutex guarding writes to w. Writers that are not
// reference types all share stripe zero.
func lockFor(w io.Writer) sync.Locker {
	var addr uintptr
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		addr = v.Pointer()
	}
	return &stripes[(addr>>4)%lockStripes]
}

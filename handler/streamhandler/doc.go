// Package streamhandler provides the handler that writes formatted log
// records to a single io.Writer (default: os.Stderr).
//
// Each record is rendered into a pooled buffer outside any lock and then
// handed to the destination in exactly one Write call while holding the
// destination's mutex, so concurrent goroutines never interleave partial
// lines. The lock is released through defer on every path, including a
// Write that panics.
//
// Write failures are counted in Stats and returned from Handle, never
// retried and never redirected elsewhere.
//
// Building with -tags blog_nolock removes the locking. That build is
// only safe for single-goroutine programs or externally synchronized
// destinations.
package streamhandler

//go:build !blog_disabled

package logger

// Disabled reports whether logging is compiled out. Build with
// -tags blog_disabled to turn every filtered call into a no-op.
const Disabled = false

//go:build !blog_notimestamp

package formatter

// TimestampsCompiled reports whether timestamp rendering is built in.
// Build with -tags blog_notimestamp to remove it.
const TimestampsCompiled = true

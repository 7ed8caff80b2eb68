//go:build blog_notimestamp

package formatter

// TimestampsCompiled reports whether timestamp rendering is built in.
const TimestampsCompiled = false

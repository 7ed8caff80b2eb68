//go:build blog_disabled

package logger

// Disabled reports whether logging is compiled out. In this build every
// filtered call is a constant-false branch and Init announces nothing;
// Emit still writes.
const Disabled = true

package logger

import "fmt"

// LazyValue is a log argument computed only when the record is actually
// formatted. Passing one to a call that the threshold filters out never
// invokes the function.
type LazyValue func() any

// Lazy wraps fn so that it runs only if the record is written:
//
//	logger.Tracef("state: %v", logger.Lazy(func() any { return dumpState() }))
func Lazy(fn func() any) LazyValue {
	return LazyValue(fn)
}

// Format implements fmt.Formatter, applying the original verb and flags
// to the computed value.
func (f LazyValue) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), f())
}

// Package core defines the shared types used across blog.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log record. Levels are ordered most severe
// first (error, warning, info, debug, trace) and a record passes a
// threshold when its level is numerically at or below it.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has written
// it; emission is synchronous, so the entry is always free again when
// Handle returns.
package core

// Package logger is the public API of blog. Most users only need to
// import this package.
//
// The package keeps a process-wide default Logger that writes to
// standard error at InfoLevel, so code can log before anything is
// configured. Init replaces the destination and threshold once at
// startup and announces the new threshold:
//
//	logger.Init(os.Stdout, logger.DebugLevel)
//	logger.Infof("listening on %s", addr)
//
// Each record is one line:
//
//	[2026-01-15 12:00:00] [info] main.go:42: listening on :8080
//
// Levels are ordered most severe first (error, warning, info, debug,
// trace) and a record is written when its level is at or below the
// threshold. The check happens before the call site is captured and
// before the format string is expanded, so a filtered call costs a
// single comparison. Arguments that are expensive to compute can be
// wrapped in Lazy, or the whole call guarded with Enabled:
//
//	logger.Tracef("tree: %v", logger.Lazy(func() any { return t.Dump() }))
//
// Emit bypasses the threshold and writes to an explicit writer with an
// explicit location.
//
// Logging never fails from the caller's point of view: write errors are
// counted by the handler and otherwise dropped.
//
// For dependency injection, build a Logger with its own handler and
// threshold:
//
//	log := logger.NewBuilder().
//	    WithHandler(streamhandler.New(streamhandler.Config{Writer: w})).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Build tags: blog_disabled compiles every filtered call out,
// blog_notimestamp drops timestamps, blog_nolock drops write locking.
package logger

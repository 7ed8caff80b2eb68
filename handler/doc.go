// Package handler provides the Handler interface that sits between the
// logger and a destination, plus adapters that let other logging APIs
// feed the same pipeline.
//
// A Handler receives one fully populated Entry per call and writes it
// synchronously. The built-in implementation is streamhandler, which
// renders the entry as a single line and writes it to one io.Writer.
//
// Adapters:
//
//   - SlogHandler implements log/slog.Handler, so slog.New(handler.NewSlogHandler(h, lvl))
//     produces blog lines. Attributes are rendered as key=value text.
//   - ZapCore implements go.uber.org/zap/zapcore.Core for programs that
//     already log through zap.
//
// Handlers that implement StatsProvider expose processed and failed
// write counts. Failures never propagate past the logger package, so
// these counters are the only place they can be observed.
package handler

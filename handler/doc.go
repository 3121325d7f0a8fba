// Package handler connects forestry to the logging front-ends Go
// programs already use.
//
// A logger.Logger is single-goroutine. LockedLogger wraps one in a
// mutex that covers the entire log call, which is the synchronization
// concurrent callers need. The adapters log into any Target, normally
// a LockedLogger:
//
//   - SlogHandler implements log/slog.Handler, mapping slog levels to
//     debug, info, warning, error and critical.
//   - ZapCore implements go.uber.org/zap/zapcore.Core, mapping zap
//     levels the same way (DPanic, Panic and Fatal become critical).
//
// Attributes and fields are rendered as " key=value" after the message.
package handler

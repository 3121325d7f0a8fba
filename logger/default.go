package logger

import (
	"io"
	"sync"
	"time"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Default logger writes to stderr; its buffer is allocated on first use
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. The previous default is not
// closed.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// Like the Logger itself they are meant for a single goroutine.

// SetOption applies an option to the default logger
func SetOption(opt Option) {
	Default().SetOption(opt)
}

// SetTimer sets the default logger's timer start and enables the timer
func SetTimer(start time.Time) {
	Default().SetTimer(start)
}

// SetFile sets the default logger's file sink and enables file output
func SetFile(w io.Writer) {
	Default().SetFile(w)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) {
	Default().Warning(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Success logs a success message using the default logger
func Success(msg string) {
	Default().Success(msg)
}

// Critical logs a critical message using the default logger
func Critical(msg string) {
	Default().Critical(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Successf logs a formatted success message using the default logger
func Successf(format string, args ...interface{}) {
	Default().Successf(format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().Criticalf(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Deinit flushes and closes the default logger. Call it once at
// shutdown, typically deferred in main.
func Deinit() error {
	return Default().Close()
}

package handler

import (
	"sync"

	"github.com/Philipp01105/forestry/core"
	"github.com/Philipp01105/forestry/logger"
)

// Target is what the adapters log into.
type Target interface {
	// Log writes one message at the given level
	Log(level core.Level, msg string)
	// Flush writes out buffered output
	Flush()
}

// LockedLogger serializes every call into a single-goroutine Logger.
// The mutex covers the whole log call, buffer and flush included.
type LockedLogger struct {
	mu sync.Mutex
	l  *logger.Logger
}

// NewLockedLogger wraps l. After this, l must only be used through
// the returned LockedLogger.
func NewLockedLogger(l *logger.Logger) *LockedLogger {
	return &LockedLogger{l: l}
}

// Log logs msg at level
func (ll *LockedLogger) Log(level core.Level, msg string) {
	ll.mu.Lock()
	ll.l.Log(level, msg)
	ll.mu.Unlock()
}

// SetOption applies an option
func (ll *LockedLogger) SetOption(opt core.Option) {
	ll.mu.Lock()
	ll.l.SetOption(opt)
	ll.mu.Unlock()
}

// Flush writes out whatever the buffer holds
func (ll *LockedLogger) Flush() {
	ll.mu.Lock()
	ll.l.Flush()
	ll.mu.Unlock()
}

// Err returns the sink failures recorded so far
func (ll *LockedLogger) Err() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	return ll.l.Err()
}

// Close closes the wrapped logger
func (ll *LockedLogger) Close() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	return ll.l.Close()
}

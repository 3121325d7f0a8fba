package buffer

import (
	"fmt"
	"io"
	"os"
)

const (
	// DefaultCapacity is the buffer size used when none is configured.
	DefaultCapacity = 1024

	// ReferenceCapacity is the deliberately tiny size the format was
	// designed around. Useful in tests to exercise the flush path.
	ReferenceCapacity = 16
)

// OverflowMessage is written to the diagnostic writer when a fragment
// is dropped.
const OverflowMessage = "\n\x1b[0mBuffer overflowed twice; make buffer longer or log message shorter.\n"

// Flusher receives the buffered bytes on every flush. The slice is
// only valid for the duration of the call.
type Flusher interface {
	Flush(p []byte)
}

// FlusherFunc adapts a function to the Flusher interface.
type FlusherFunc func(p []byte)

// Flush calls f(p).
func (f FlusherFunc) Flush(p []byte) { f(p) }

// Config holds configuration for a Buffer
type Config struct {
	// Capacity in bytes (default: DefaultCapacity)
	Capacity int
	// Diagnostic receives OverflowMessage for dropped fragments (default: os.Stderr)
	Diagnostic io.Writer
}

func applyDefaults(cfg *Config) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Diagnostic == nil {
		cfg.Diagnostic = os.Stderr
	}
}

// Buffer is a fixed-capacity byte buffer with flush-and-retry on overflow.
type Buffer struct {
	buf     []byte // len is the cursor, cap is the capacity
	scratch []byte // numeric fragments are rendered here first
	flusher Flusher
	diag    io.Writer
	stats   *Stats
}

// New creates a Buffer that flushes into f.
func New(f Flusher, cfg Config) *Buffer {
	applyDefaults(&cfg)
	return &Buffer{
		buf:     make([]byte, 0, cfg.Capacity),
		scratch: make([]byte, 0, 32),
		flusher: f,
		diag:    cfg.Diagnostic,
		stats:   NewStats(),
	}
}

// Len returns the cursor position.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Available returns the number of free bytes after the cursor.
func (b *Buffer) Available() int { return cap(b.buf) - len(b.buf) }

// Bytes returns the unflushed contents. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

// Reset discards the contents without flushing.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Stats returns a snapshot of the buffer counters.
func (b *Buffer) Stats() Snapshot { return b.stats.GetSnapshot() }

// Flush hands the buffered bytes to the Flusher and resets the cursor.
// An empty buffer is not flushed.
func (b *Buffer) Flush() {
	if len(b.buf) > 0 {
		if b.flusher != nil {
			b.flusher.Flush(b.buf)
		}
		b.stats.IncrementFlushed()
	}
	b.buf = b.buf[:0]
}

// AppendString appends s, flushing once if it does not fit. If s is
// larger than the capacity it is dropped.
func (b *Buffer) AppendString(s string) {
	if len(s) > b.Available() {
		b.Flush()
		if len(s) > b.Available() {
			b.drop(len(s))
			return
		}
	}
	b.buf = append(b.buf, s...)
}

// AppendUint16 renders v with a printf template such as "%04x" and
// appends the result under the same rules as AppendString.
func (b *Buffer) AppendUint16(format string, v uint16) {
	b.scratch = fmt.Appendf(b.scratch[:0], format, v)
	b.appendScratch()
}

// AppendFloat renders v with a printf template such as "%.3fms" and
// appends the result under the same rules as AppendString.
func (b *Buffer) AppendFloat(format string, v float64) {
	b.scratch = fmt.Appendf(b.scratch[:0], format, v)
	b.appendScratch()
}

// AppendByte appends c, flushing first if the buffer is full. It never
// drops.
func (b *Buffer) AppendByte(c byte) {
	for len(b.buf) == cap(b.buf) {
		b.Flush()
	}
	b.buf = append(b.buf, c)
}

func (b *Buffer) appendScratch() {
	if len(b.scratch) > b.Available() {
		b.Flush()
		if len(b.scratch) > b.Available() {
			b.drop(len(b.scratch))
			return
		}
	}
	b.buf = append(b.buf, b.scratch...)
}

// drop records a fragment that cannot fit even in an empty buffer.
func (b *Buffer) drop(n int) {
	b.stats.IncrementDropped(n)
	_, _ = io.WriteString(b.diag, OverflowMessage)
}

package buffer

import (
	"sync/atomic"
)

// Stats tracks buffer statistics. Counters are atomic so a monitoring
// goroutine may read them while the owner logs.
type Stats struct {
	// FlushedTotal counts flushes that carried data
	FlushedTotal uint64
	// DroppedTotal counts fragments dropped for being larger than the buffer
	DroppedTotal uint64
	// DroppedBytes sums the sizes of dropped fragments
	DroppedBytes uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFlushed atomically increments the flush counter
func (s *Stats) IncrementFlushed() {
	atomic.AddUint64(&s.FlushedTotal, 1)
}

// IncrementDropped atomically records one dropped fragment of n bytes
func (s *Stats) IncrementDropped(n int) {
	atomic.AddUint64(&s.DroppedTotal, 1)
	atomic.AddUint64(&s.DroppedBytes, uint64(n))
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.FlushedTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.DroppedBytes, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	FlushedTotal uint64
	DroppedTotal uint64
	DroppedBytes uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		FlushedTotal: atomic.LoadUint64(&s.FlushedTotal),
		DroppedTotal: atomic.LoadUint64(&s.DroppedTotal),
		DroppedBytes: atomic.LoadUint64(&s.DroppedBytes),
	}
}

package sink

import (
	"sync/atomic"
)

// Sink identifies a destination in Stats.
type Sink int

const (
	// SinkStderr is the console destination
	SinkStderr Sink = iota
	// SinkFile is the log file destination
	SinkFile
)

// String returns the string representation of the sink
func (s Sink) String() string {
	switch s {
	case SinkStderr:
		return "stderr"
	case SinkFile:
		return "file"
	default:
		return "unknown"
	}
}

// Stats tracks dispatcher statistics
type Stats struct {
	WritesStderr uint64
	WritesFile   uint64
	BytesStderr  uint64
	BytesFile    uint64
	ErrorsStderr uint64
	ErrorsFile   uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// RecordWrite atomically records one write of n bytes to sink.
func (s *Stats) RecordWrite(sink Sink, n int, err error) {
	writes, bytes, errs := &s.WritesStderr, &s.BytesStderr, &s.ErrorsStderr
	if sink == SinkFile {
		writes, bytes, errs = &s.WritesFile, &s.BytesFile, &s.ErrorsFile
	}
	if err != nil {
		atomic.AddUint64(errs, 1)
	} else {
		atomic.AddUint64(writes, 1)
	}
	if n > 0 {
		atomic.AddUint64(bytes, uint64(n))
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Writes map[Sink]uint64
	Bytes  map[Sink]uint64
	Errors map[Sink]uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Writes: map[Sink]uint64{
			SinkStderr: atomic.LoadUint64(&s.WritesStderr),
			SinkFile:   atomic.LoadUint64(&s.WritesFile),
		},
		Bytes: map[Sink]uint64{
			SinkStderr: atomic.LoadUint64(&s.BytesStderr),
			SinkFile:   atomic.LoadUint64(&s.BytesFile),
		},
		Errors: map[Sink]uint64{
			SinkStderr: atomic.LoadUint64(&s.ErrorsStderr),
			SinkFile:   atomic.LoadUint64(&s.ErrorsFile),
		},
	}
}

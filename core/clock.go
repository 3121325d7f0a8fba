package core

import (
	"time"
)

// Clock returns the current time. Loggers take a Clock so tests can
// drive the elapsed timer deterministically.
type Clock func() time.Time

// SystemClock is the default Clock. The returned times carry Go's
// monotonic reading, so elapsed durations are immune to wall clock
// adjustments.
func SystemClock() time.Time {
	return time.Now()
}

// Stopwatch measures milliseconds since a start time. The zero value
// is unstarted and starts itself on the first call to Millis.
type Stopwatch struct {
	start time.Time
	clock Clock
}

// NewStopwatch returns an unstarted stopwatch reading from clock.
// A nil clock uses SystemClock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock
	}
	return &Stopwatch{clock: clock}
}

// Set sets the start time explicitly.
func (s *Stopwatch) Set(start time.Time) {
	s.start = start
}

// Started reports whether a start time is set.
func (s *Stopwatch) Started() bool {
	return !s.start.IsZero()
}

// Millis returns the elapsed time in milliseconds. An unstarted
// stopwatch is started now, so the first reading is close to zero.
func (s *Stopwatch) Millis() float64 {
	now := s.clock()
	if s.start.IsZero() {
		s.start = now
	}
	return float64(now.Sub(s.start)) / float64(time.Millisecond)
}

// MonotonicMicros returns a monotonic timestamp in microseconds, used
// to name log files created on demand.
func MonotonicMicros() uint64 {
	return monotonicMicros()
}

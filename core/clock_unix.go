//go:build linux || darwin

package core

import (
	"golang.org/x/sys/unix"
)

// monotonicMicros reads CLOCK_MONOTONIC_RAW, falling back to the
// process-relative clock if the call fails.
func monotonicMicros() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return processMicros()
	}
	return uint64(ts.Sec)*1_000_000 + uint64(ts.Nsec)/1_000
}

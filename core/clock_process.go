package core

import (
	"time"
)

// processStart anchors processMicros to Go's monotonic clock.
var processStart = time.Now()

// processMicros returns microseconds since package initialization.
func processMicros() uint64 {
	return uint64(time.Since(processStart) / time.Microsecond)
}

package core

// Entry is one log call as seen by the formatter.
type Entry struct {
	Index   uint16
	Level   Level
	Message string
	// Elapsed is the timer reading in milliseconds; only meaningful
	// when the Timer flag is set.
	Elapsed float64
}

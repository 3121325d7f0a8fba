package formatter

import (
	"github.com/Philipp01105/forestry/core"
)

// ANSI escape sequences used by the text format
const (
	Clear = "\x1b[0m"
	Bold  = "\x1b[1m"

	Blue       = "\x1b[34m"
	Yellow     = "\x1b[33m"
	Red        = "\x1b[31m"
	Green      = "\x1b[32m"
	WhiteOnRed = "\x1b[37;41m"
	Magenta    = "\x1b[35m"
)

var levelColors = [...]string{
	core.InfoLevel:     Blue,
	core.WarningLevel:  Yellow,
	core.ErrorLevel:    Red,
	core.SuccessLevel:  Green,
	core.CriticalLevel: WhiteOnRed,
	core.DebugLevel:    Magenta,
}

// Color returns the ANSI color sequence of a level, or "" for an
// undeclared level.
func Color(l core.Level) string {
	if !l.Valid() {
		return ""
	}
	return levelColors[l]
}

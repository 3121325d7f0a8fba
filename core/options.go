package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Option is one formatting or output toggle. Options only ever add
// bits to a Flags value; Reset is the single way to remove them.
type Option uint8

const (
	// NoIndex omits the sequence index from the header
	NoIndex Option = iota
	// NoSymbol omits the level symbol from the header
	NoSymbol
	// NoColor omits ANSI color escapes
	NoColor
	// NoBold omits ANSI bold escapes
	NoBold
	// Plain is NoColor and NoBold
	Plain
	// Basic is NoIndex, NoSymbol, NoColor and NoBold
	Basic
	// Timer adds the elapsed time to the header
	Timer
	// LogFile also writes to a file sink
	LogFile
	// OnlyFile writes to the file sink and nothing to stderr
	OnlyFile
	// Reset clears every flag
	Reset
)

// ErrUnknownOption is returned by ParseOption for unrecognized names.
var ErrUnknownOption = errors.New("unknown log option")

// Flags is the bit set built from applied options. The zero value
// shows index, symbol, color and bold and writes to stderr only.
type Flags uint8

const (
	FlagNoIndex  Flags = 1 << 0
	FlagNoSymbol Flags = 1 << 1
	FlagNoColor  Flags = 1 << 2
	FlagNoBold   Flags = 1 << 3
	FlagLogFile  Flags = 1 << 4
	FlagNoStderr Flags = 1 << 5
	FlagTimer    Flags = 1 << 6
)

// optionBits maps each option to the bits it sets. Reset is handled
// separately in Apply.
var optionBits = [...]Flags{
	NoIndex:  FlagNoIndex,
	NoSymbol: FlagNoSymbol,
	NoColor:  FlagNoColor,
	NoBold:   FlagNoBold,
	Plain:    FlagNoColor | FlagNoBold,
	Basic:    FlagNoIndex | FlagNoSymbol | FlagNoColor | FlagNoBold,
	Timer:    FlagTimer,
	LogFile:  FlagLogFile,
	OnlyFile: FlagLogFile | FlagNoStderr,
	Reset:    0,
}

var optionNames = [...]string{
	NoIndex:  "no-index",
	NoSymbol: "no-symbol",
	NoColor:  "no-color",
	NoBold:   "no-bold",
	Plain:    "plain",
	Basic:    "basic",
	Timer:    "timer",
	LogFile:  "log-file",
	OnlyFile: "only-file",
	Reset:    "reset",
}

// String returns the option name accepted by ParseOption
func (o Option) String() string {
	if int(o) >= len(optionNames) {
		return "unknown"
	}
	return optionNames[o]
}

// ParseOption converts an option name to an Option. Names are matched
// case-insensitively and '_' is accepted in place of '-'.
func ParseOption(s string) (Option, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for o, n := range optionNames {
		if n == name {
			return Option(o), nil
		}
	}
	return Reset, errors.Wrapf(ErrUnknownOption, "parse %q", s)
}

// Apply returns f with opt applied. Undeclared options leave f unchanged.
func (f Flags) Apply(opt Option) Flags {
	if opt == Reset {
		return 0
	}
	if int(opt) >= len(optionBits) {
		return f
	}
	return f | optionBits[opt]
}

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// ShowIndex reports whether the header carries the sequence index.
func (f Flags) ShowIndex() bool { return f&FlagNoIndex == 0 }

// ShowSymbol reports whether the header carries the level symbol.
func (f Flags) ShowSymbol() bool { return f&FlagNoSymbol == 0 }

// Color reports whether ANSI color escapes are written.
func (f Flags) Color() bool { return f&FlagNoColor == 0 }

// Bold reports whether ANSI bold escapes are written.
func (f Flags) Bold() bool { return f&FlagNoBold == 0 }

// Plain reports whether both color and bold are suppressed, in which
// case no clearing escapes are written either.
func (f Flags) Plain() bool { return f.Has(FlagNoColor | FlagNoBold) }

// Timer reports whether the elapsed time is shown.
func (f Flags) Timer() bool { return f&FlagTimer != 0 }

// ToFile reports whether output also goes to the file sink.
func (f Flags) ToFile() bool { return f&FlagLogFile != 0 }

// ToStderr reports whether output goes to stderr.
func (f Flags) ToStderr() bool { return f&FlagNoStderr == 0 }

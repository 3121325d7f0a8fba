package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the kind of a log message. Unlike a severity
// threshold, every level is always emitted; the level only selects the
// color, the symbol and whether the message is set in bold.
type Level int8

const (
	// InfoLevel for general informational messages
	InfoLevel Level = iota
	// WarningLevel for recoverable problems
	WarningLevel
	// ErrorLevel for failed operations
	ErrorLevel
	// SuccessLevel for completed operations
	SuccessLevel
	// CriticalLevel for failures the program cannot work around
	CriticalLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// Levels lists every level in declaration order.
var Levels = [...]Level{InfoLevel, WarningLevel, ErrorLevel, SuccessLevel, CriticalLevel, DebugLevel}

var levelNames = [...]string{
	InfoLevel:     "INFO",
	WarningLevel:  "WARNING",
	ErrorLevel:    "ERROR",
	SuccessLevel:  "SUCCESS",
	CriticalLevel: "CRITICAL",
	DebugLevel:    "DEBUG",
}

// one-character prefixes shown in the header
var levelSymbols = [...]byte{
	InfoLevel:     '*',
	WarningLevel:  '~',
	ErrorLevel:    '!',
	SuccessLevel:  '+',
	CriticalLevel: '%',
	DebugLevel:    '?',
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= InfoLevel && l <= DebugLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Symbol returns the header symbol of the level, or '?' for an
// undeclared level.
func (l Level) Symbol() byte {
	if !l.Valid() {
		return '?'
	}
	return levelSymbols[l]
}

// Bold reports whether messages of this level are emphasized.
func (l Level) Bold() bool {
	switch l {
	case ErrorLevel, SuccessLevel, CriticalLevel:
		return true
	default:
		return false
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "SUCCESS":
		return SuccessLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return InfoLevel, errors.Wrapf(ErrUnknownLevel, "parse %q", s)
	}
}

package logger

import (
	"github.com/Philipp01105/forestry/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	SuccessLevel  = core.SuccessLevel
	CriticalLevel = core.CriticalLevel
	DebugLevel    = core.DebugLevel
)

// Option Re-export type and constants for convenience
type Option = core.Option

const (
	NoIndex  = core.NoIndex
	NoSymbol = core.NoSymbol
	NoColor  = core.NoColor
	NoBold   = core.NoBold
	Plain    = core.Plain
	Basic    = core.Basic
	Timer    = core.Timer
	LogFile  = core.LogFile
	OnlyFile = core.OnlyFile
	Reset    = core.Reset
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// ParseOption converts a string to an Option
func ParseOption(s string) (Option, error) {
	return core.ParseOption(s)
}

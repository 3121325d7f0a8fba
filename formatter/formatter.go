package formatter

import (
	"github.com/Philipp01105/forestry/buffer"
	"github.com/Philipp01105/forestry/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format writes the complete line for entry into buf
	Format(buf *buffer.Buffer, flags core.Flags, entry *core.Entry)
}

// Config holds formatter configuration
type Config struct {
	// IndexFormat is the printf template for the sequence index (default: "%04x")
	IndexFormat string
	// ElapsedFormat is the printf template for the timer reading (default: "%.3fms")
	ElapsedFormat string
}

func applyDefaults(cfg *Config) {
	if cfg.IndexFormat == "" {
		cfg.IndexFormat = "%04x"
	}
	if cfg.ElapsedFormat == "" {
		cfg.ElapsedFormat = "%.3fms"
	}
}

// pushClear writes the clearing escape unless color and bold are both off.
func pushClear(buf *buffer.Buffer, flags core.Flags) {
	if !flags.Plain() {
		buf.AppendString(Clear)
	}
}

// pushStyle clears any previous style, then writes the level's color
// and, for emphasized levels, bold.
func pushStyle(buf *buffer.Buffer, flags core.Flags, lvl core.Level) {
	pushClear(buf, flags)
	if flags.Color() {
		buf.AppendString(Color(lvl))
	}
	if flags.Bold() && lvl.Bold() {
		buf.AppendString(Bold)
	}
}

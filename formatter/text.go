package formatter

import (
	"github.com/Philipp01105/forestry/buffer"
	"github.com/Philipp01105/forestry/core"
)

// TextFormatter writes lines of the form
//
//	[<index>:<symbol>](<elapsed>) <message>
//
// with each decoration controlled by the flags.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	applyDefaults(&cfg)
	return &TextFormatter{Config: cfg}
}

// Format writes the header followed by the message.
func (f *TextFormatter) Format(buf *buffer.Buffer, flags core.Flags, entry *core.Entry) {
	f.FormatHeader(buf, flags, entry)
	f.FormatMessage(buf, flags, entry)
}

// FormatHeader writes the bracketed prefix and its trailing space.
// The brackets are written even when index and symbol are both off.
func (f *TextFormatter) FormatHeader(buf *buffer.Buffer, flags core.Flags, entry *core.Entry) {
	buf.AppendByte('[')

	if flags.ShowIndex() {
		pushStyle(buf, flags, entry.Level)
		buf.AppendUint16(f.IndexFormat, entry.Index)
		pushClear(buf, flags)
	}

	if flags.ShowIndex() && flags.ShowSymbol() {
		buf.AppendByte(':')
	}

	if flags.ShowSymbol() {
		pushStyle(buf, flags, entry.Level)
		buf.AppendByte(entry.Level.Symbol())
		pushClear(buf, flags)
	}

	buf.AppendByte(']')

	if flags.Timer() {
		buf.AppendByte('(')
		pushStyle(buf, flags, entry.Level)
		buf.AppendFloat(f.ElapsedFormat, entry.Elapsed)
		pushClear(buf, flags)
		buf.AppendByte(')')
	}

	buf.AppendByte(' ')
}

// FormatMessage writes the styled message and a newline.
func (f *TextFormatter) FormatMessage(buf *buffer.Buffer, flags core.Flags, entry *core.Entry) {
	pushStyle(buf, flags, entry.Level)
	buf.AppendString(entry.Message)
	pushClear(buf, flags)
	buf.AppendByte('\n')
}

package formatter

import (
	"strings"
	"testing"

	"github.com/Philipp01105/forestry/buffer"
	"github.com/Philipp01105/forestry/core"
)

func render(t *testing.T, flags core.Flags, entry core.Entry, part string) string {
	t.Helper()
	var out strings.Builder
	buf := buffer.New(buffer.FlusherFunc(func(p []byte) { out.Write(p) }), buffer.Config{})
	f := NewTextFormatter(Config{})
	switch part {
	case "header":
		f.FormatHeader(buf, flags, &entry)
	case "message":
		f.FormatMessage(buf, flags, &entry)
	default:
		f.Format(buf, flags, &entry)
	}
	buf.Flush()
	return out.String()
}

func flagsOf(opts ...core.Option) core.Flags {
	var f core.Flags
	for _, o := range opts {
		f = f.Apply(o)
	}
	return f
}

func TestTextFormatter_DefaultLine(t *testing.T) {
	got := render(t, 0, core.Entry{Level: core.InfoLevel, Message: "INFO"}, "")
	want := "[" + Clear + Blue + "0000" + Clear + ":" + Clear + Blue + "*" + Clear + "] " +
		Clear + Blue + "INFO" + Clear + "\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestTextFormatter_BoldLevels(t *testing.T) {
	got := render(t, 0, core.Entry{Index: 0x1f, Level: core.CriticalLevel, Message: "boom"}, "")
	style := Clear + WhiteOnRed + Bold
	want := "[" + style + "001f" + Clear + ":" + style + "%" + Clear + "] " + style + "boom" + Clear + "\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestTextFormatter_Headers(t *testing.T) {
	tests := []struct {
		name  string
		flags core.Flags
		entry core.Entry
		want  string
	}{
		{
			name:  "basic",
			flags: flagsOf(core.Basic),
			entry: core.Entry{Index: 7, Level: core.ErrorLevel},
			want:  "[] ",
		},
		{
			name:  "no index no symbol keeps brackets",
			flags: flagsOf(core.NoIndex, core.NoSymbol, core.Plain),
			entry: core.Entry{Level: core.InfoLevel},
			want:  "[] ",
		},
		{
			name:  "plain",
			flags: flagsOf(core.Plain),
			entry: core.Entry{Index: 0xbeef, Level: core.WarningLevel},
			want:  "[beef:~] ",
		},
		{
			name:  "plain no index",
			flags: flagsOf(core.Plain, core.NoIndex),
			entry: core.Entry{Level: core.SuccessLevel},
			want:  "[+] ",
		},
		{
			name:  "plain no symbol",
			flags: flagsOf(core.Plain, core.NoSymbol),
			entry: core.Entry{Index: 3, Level: core.DebugLevel},
			want:  "[0003] ",
		},
		{
			name:  "basic with timer",
			flags: flagsOf(core.Basic, core.Timer),
			entry: core.Entry{Level: core.InfoLevel, Elapsed: 12.3456},
			want:  "[](12.346ms) ",
		},
		{
			name:  "no color keeps bold and clear",
			flags: flagsOf(core.NoColor, core.NoIndex),
			entry: core.Entry{Level: core.ErrorLevel},
			want:  "[" + Clear + Bold + "!" + Clear + "] ",
		},
		{
			name:  "no bold keeps color",
			flags: flagsOf(core.NoBold, core.NoSymbol),
			entry: core.Entry{Index: 1, Level: core.SuccessLevel},
			want:  "[" + Clear + Green + "0001" + Clear + "] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.flags, tt.entry, "header"); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestTextFormatter_BasicHeaderForEveryLevel(t *testing.T) {
	for _, l := range core.Levels {
		if got := render(t, flagsOf(core.Basic), core.Entry{Level: l}, "header"); got != "[] " {
			t.Errorf("%v: header = %q, want %q", l, got, "[] ")
		}
	}
}

func TestTextFormatter_PlainMessageHasNoEscapes(t *testing.T) {
	for _, l := range core.Levels {
		got := render(t, flagsOf(core.Plain), core.Entry{Level: l, Message: "body"}, "message")
		if got != "body\n" {
			t.Errorf("%v: message = %q, want %q", l, got, "body\n")
		}
	}
}

func TestTextFormatter_TimerStyled(t *testing.T) {
	got := render(t, flagsOf(core.Timer, core.NoIndex, core.NoSymbol),
		core.Entry{Level: core.WarningLevel, Elapsed: 0}, "header")
	want := "[](" + Clear + Yellow + "0.000ms" + Clear + ") "
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestTextFormatter_SmallBufferSameOutput(t *testing.T) {
	entry := core.Entry{Index: 0x1234, Level: core.CriticalLevel, Message: "CRITICAL ERROR", Elapsed: 5}
	flags := flagsOf(core.Timer)

	var big, small strings.Builder
	f := NewTextFormatter(Config{})

	bb := buffer.New(buffer.FlusherFunc(func(p []byte) { big.Write(p) }), buffer.Config{})
	f.Format(bb, flags, &entry)
	bb.Flush()

	sb := buffer.New(buffer.FlusherFunc(func(p []byte) { small.Write(p) }),
		buffer.Config{Capacity: buffer.ReferenceCapacity})
	f.Format(sb, flags, &entry)
	sb.Flush()

	if big.String() != small.String() {
		t.Errorf("16-byte buffer changed output:\n%q\n%q", small.String(), big.String())
	}
}

func TestColor(t *testing.T) {
	if Color(core.Level(99)) != "" {
		t.Error("undeclared level should have no color")
	}
	if Color(core.DebugLevel) != Magenta {
		t.Errorf("Color(Debug) = %q", Color(core.DebugLevel))
	}
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	buf := buffer.New(buffer.FlusherFunc(func([]byte) {}), buffer.Config{})
	f := NewTextFormatter(Config{})
	entry := core.Entry{Level: core.InfoLevel, Message: "benchmark message"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		entry.Index = uint16(i)
		f.Format(buf, core.Flags(0).Apply(core.Timer), &entry)
		buf.Flush()
	}
}

package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Philipp01105/forestry/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Target. Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	target Target
	level  slog.Leveler
	attrs  string // pre-rendered attrs from WithAttrs
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter. Records below
// level are discarded; a nil level means slog.LevelDebug.
func NewSlogHandler(t Target, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &SlogHandler{
		target: t,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle renders the record and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})
	s.target.Log(slogLevelToCore(record.Level), b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		target: s.target,
		level:  s.level,
		attrs:  b.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		target: s.target,
		level:  s.level,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything at
// least four steps above Error is critical.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
// Attrs with an empty key are skipped; groups with an empty key are inlined.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}

	b.WriteByte(' ')
	b.WriteString(joinKey(group, a.Key))
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

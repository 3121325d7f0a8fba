package handler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/forestry/core"
)

// ZapCore is a zapcore.Core that logs through a Target, so a
// *zap.Logger can write forestry-formatted lines:
//
//	log := zap.New(handler.NewZapCore(locked, zapcore.InfoLevel))
//
// Fields are appended to the message as key=value pairs in key order.
type ZapCore struct {
	zapcore.LevelEnabler
	target Target
	fields []zapcore.Field
}

// NewZapCore creates a new zapcore.Core adapter.
func NewZapCore(t Target, enab zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{
		LevelEnabler: enab,
		target:       t,
	}
}

// With returns a new core carrying additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &ZapCore{
		LevelEnabler: c.LevelEnabler,
		target:       c.target,
		fields:       append(newFields, fields...),
	}
}

// Check adds this core to ce when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields and logs them.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Message
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		msg += renderFields(enc.Fields)
	}
	if ent.LoggerName != "" {
		msg = ent.LoggerName + ": " + msg
	}
	c.target.Log(zapLevelToCore(ent.Level), msg)
	return nil
}

// Sync flushes the target's buffer.
func (c *ZapCore) Sync() error {
	c.target.Flush()
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func renderFields(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprint(&b, m[k])
	}
	return b.String()
}

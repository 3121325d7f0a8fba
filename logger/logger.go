package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/Philipp01105/forestry/buffer"
	"github.com/Philipp01105/forestry/core"
	"github.com/Philipp01105/forestry/formatter"
	"github.com/Philipp01105/forestry/sink"
)

// IndexOverflowMessage is logged as a warning when the sequence index
// wraps around.
const IndexOverflowMessage = "Log index overflowed; log index may be inaccurate."

// Logger formats leveled messages through a fixed-size buffer into
// stderr and an optional log file. A Logger is not safe for concurrent
// use; callers that log from several goroutines must serialize the
// calls (the adapters in package handler do this).
type Logger struct {
	flags     core.Flags
	index     uint16
	timer     *core.Stopwatch
	buf       *buffer.Buffer // allocated by the first log call
	bufCfg    buffer.Config
	formatter formatter.Formatter
	sinks     *sink.Dispatcher
	autoFlush bool
	closed    bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	opts      []core.Option
	start     time.Time
	clock     core.Clock
	bufCfg    buffer.Config
	sinkCfg   sink.Config
	formatter formatter.Formatter
	autoFlush bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		autoFlush: true,
	}
}

// WithOptions applies formatting options in order
func (b *Builder) WithOptions(opts ...core.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// WithTimer sets the timer start and enables the Timer option
func (b *Builder) WithTimer(start time.Time) *Builder {
	b.start = start
	b.opts = append(b.opts, core.Timer)
	return b
}

// WithClock sets the clock read by the timer (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithFile sets the file sink and enables the LogFile option
func (b *Builder) WithFile(w io.Writer) *Builder {
	b.sinkCfg.File = w
	b.opts = append(b.opts, core.LogFile)
	return b
}

// WithWriter sets the console destination (default: os.Stderr)
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.sinkCfg.Stderr = w
	return b
}

// WithDir sets the directory for generated log files
func (b *Builder) WithDir(dir string) *Builder {
	b.sinkCfg.Dir = dir
	return b
}

// WithBufferSize sets the staging buffer capacity in bytes
func (b *Builder) WithBufferSize(n int) *Builder {
	b.bufCfg.Capacity = n
	return b
}

// WithDiagnostic sets where buffer overflow diagnostics go (default: os.Stderr)
func (b *Builder) WithDiagnostic(w io.Writer) *Builder {
	b.bufCfg.Diagnostic = w
	return b
}

// WithFormatter sets the formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithAutoFlush controls whether the buffer is flushed at the end of
// every log call (default: true). When false, output only leaves the
// buffer when it fills up, on Flush, or on Close.
func (b *Builder) WithAutoFlush(enabled bool) *Builder {
	b.autoFlush = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		timer:     core.NewStopwatch(b.clock),
		bufCfg:    b.bufCfg,
		formatter: b.formatter,
		sinks:     sink.NewDispatcher(b.sinkCfg),
		autoFlush: b.autoFlush,
	}
	if l.formatter == nil {
		l.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if !b.start.IsZero() {
		l.timer.Set(b.start)
	}
	for _, o := range b.opts {
		l.flags = l.flags.Apply(o)
	}
	return l
}

// New creates a Logger with default settings writing to stderr.
func New() *Logger {
	return NewBuilder().Build()
}

// SetOption applies one option to the logger's flags.
func (l *Logger) SetOption(opt core.Option) {
	l.flags = l.flags.Apply(opt)
}

// SetTimer sets the timer start and enables the Timer option.
func (l *Logger) SetTimer(start time.Time) {
	l.timer.Set(start)
	l.flags = l.flags.Apply(core.Timer)
}

// SetFile installs w as the file sink and enables the LogFile option.
// The logger owns w from now on and closes it in Close if it is an
// io.Closer. A file installed earlier is not closed until Close.
// A nil w means a generated log file is created on the next write; a
// nil *os.File leaves file output off and is reported by Err.
func (l *Logger) SetFile(w io.Writer) {
	l.sinks.SetFile(w)
	l.flags = l.flags.Apply(core.LogFile)
}

// Flags returns the current flags.
func (l *Logger) Flags() core.Flags {
	return l.flags
}

// Index returns the index the next message will carry.
func (l *Logger) Index() uint16 {
	return l.index
}

// FileName returns the name of the file sink, once known.
func (l *Logger) FileName() string {
	return l.sinks.FileName()
}

// log is the pipeline shared by every level.
func (l *Logger) log(level core.Level, msg string) {
	if l.closed {
		return
	}
	if l.buf == nil {
		l.buf = buffer.New(buffer.FlusherFunc(l.dispatch), l.bufCfg)
	}

	entry := core.Entry{Index: l.index, Level: level, Message: msg}
	if l.flags.Timer() {
		entry.Elapsed = l.timer.Millis()
	}
	l.formatter.Format(l.buf, l.flags, &entry)
	if l.autoFlush {
		l.buf.Flush()
	}

	l.index++
	if l.index == 0 {
		l.log(core.WarningLevel, IndexOverflowMessage)
	}
}

// dispatch is the buffer's flush target.
func (l *Logger) dispatch(p []byte) {
	l.sinks.Dispatch(l.flags, p)
}

// Log logs a message at the given level
func (l *Logger) Log(level core.Level, msg string) {
	l.log(level, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.log(core.InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.log(core.ErrorLevel, msg)
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	l.log(core.SuccessLevel, msg)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string) {
	l.log(core.CriticalLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.log(core.DebugLevel, msg)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.log(core.WarningLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Successf logs a success message with formatting
func (l *Logger) Successf(format string, args ...interface{}) {
	l.log(core.SuccessLevel, fmt.Sprintf(format, args...))
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Flush writes out whatever the buffer holds.
func (l *Logger) Flush() {
	if l.buf != nil {
		l.buf.Flush()
	}
}

// Err returns the sink failures recorded so far.
func (l *Logger) Err() error {
	return l.sinks.Err()
}

// BufferStats returns the staging buffer counters.
func (l *Logger) BufferStats() buffer.Snapshot {
	if l.buf == nil {
		return buffer.Snapshot{}
	}
	return l.buf.Stats()
}

// SinkStats returns the per-sink counters.
func (l *Logger) SinkStats() sink.Snapshot {
	return l.sinks.Stats()
}

// Close flushes the buffer one last time, closes the file sink and
// releases the buffer. It must be called once when logging is done;
// messages logged afterwards are discarded. Close returns the sink
// failures recorded over the logger's life.
func (l *Logger) Close() error {
	if l.closed {
		return nil
	}
	l.Flush()
	l.closed = true
	l.buf = nil
	return l.sinks.Close()
}

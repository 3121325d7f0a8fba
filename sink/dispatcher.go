package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/forestry/core"
)

// ErrClosed is recorded when a flush arrives after Close.
var ErrClosed = errors.New("sink dispatcher closed")

// Config holds configuration for a Dispatcher
type Config struct {
	// Stderr is the console destination (default: os.Stderr)
	Stderr io.Writer
	// File is an initial file destination (default: none, created on demand)
	File io.Writer
	// Dir is where generated log files are created (default: working directory)
	Dir string
	// NameFunc names generated log files (default: GenerateFileName)
	NameFunc func() string
}

func applyDefaults(cfg *Config) {
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.NameFunc == nil {
		cfg.NameFunc = GenerateFileName
	}
}

// Dispatcher writes flushed bytes to the active sinks.
type Dispatcher struct {
	stderr     zapcore.WriteSyncer
	file       *fileSink
	retired    []*fileSink // replaced by SetFile, closed with the dispatcher
	dir        string
	nameFunc   func() string
	fileFailed bool // no usable file sink; file output is skipped
	closed     bool
	err        error
	stats      *Stats
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(cfg Config) *Dispatcher {
	applyDefaults(&cfg)
	d := &Dispatcher{
		stderr:   zapcore.Lock(zapcore.AddSync(cfg.Stderr)),
		dir:      cfg.Dir,
		nameFunc: cfg.NameFunc,
		stats:    NewStats(),
	}
	d.SetFile(cfg.File)
	return d
}

// SetFile installs w as the file sink. A previously installed sink is
// not closed here; it is closed together with the dispatcher.
//
// A nil w uninstalls the file sink, so the next file write creates a
// generated log file. A nil pointer such as a typed-nil *os.File marks
// the file sink unavailable and records ErrInvalidFile.
func (d *Dispatcher) SetFile(w io.Writer) {
	if d.file != nil {
		d.retired = append(d.retired, d.file)
	}
	d.file = nil
	d.fileFailed = false
	if w == nil {
		return
	}
	s, err := newWriterSink(w)
	if err != nil {
		d.fileFailed = true
		d.stats.RecordWrite(SinkFile, 0, err)
		d.record(err)
		return
	}
	d.file = s
}

// FileName returns the name of the current file sink, if known.
func (d *Dispatcher) FileName() string {
	if d.file == nil {
		return ""
	}
	return d.file.name
}

// Dispatch writes p to stderr unless flags suppress it, and to the
// file sink when flags request it, creating the file if needed.
func (d *Dispatcher) Dispatch(flags core.Flags, p []byte) {
	if d.closed {
		d.record(ErrClosed)
		return
	}
	if len(p) == 0 {
		return
	}

	if flags.ToStderr() {
		n, err := d.stderr.Write(p)
		d.stats.RecordWrite(SinkStderr, n, err)
		d.record(errors.Wrap(err, "write stderr"))
	}

	if flags.ToFile() {
		if !d.ensureFile() {
			return
		}
		n, err := d.file.write(p)
		d.stats.RecordWrite(SinkFile, n, err)
		d.record(err)
	}
}

// ensureFile creates the generated log file on first use. It reports
// whether a file sink is available.
func (d *Dispatcher) ensureFile() bool {
	if d.file != nil {
		return true
	}
	if d.fileFailed {
		return false
	}
	f, err := createFileSink(d.dir, d.nameFunc())
	if err != nil {
		d.fileFailed = true
		d.stats.RecordWrite(SinkFile, 0, err)
		d.record(err)
		return false
	}
	d.file = f
	return true
}

func (d *Dispatcher) record(err error) {
	d.err = multierr.Append(d.err, err)
}

// Err returns every failure recorded so far, combined.
func (d *Dispatcher) Err() error {
	return d.err
}

// Stats returns a snapshot of the per-sink counters.
func (d *Dispatcher) Stats() Snapshot {
	return d.stats.GetSnapshot()
}

// Close closes the file sinks. Stderr is left open. Close returns the
// recorded failures together with any close error; calling it again
// returns nil.
func (d *Dispatcher) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := d.err
	for _, s := range d.retired {
		err = multierr.Append(err, s.close())
	}
	if d.file != nil {
		err = multierr.Append(err, d.file.close())
	}
	d.retired = nil
	d.file = nil
	d.err = nil
	return err
}

package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/forestry/core"
)

// fileSink is one file destination.
type fileSink struct {
	name   string
	ws     zapcore.WriteSyncer
	closer io.Closer
	lock   *flock.Flock // only set for files created by the Dispatcher
}

// ErrInvalidFile is recorded when a nil pointer is installed as the
// file sink, such as the *os.File returned by a failed os.Create.
var ErrInvalidFile = errors.New("invalid log file handle")

// newWriterSink wraps a caller-supplied writer. It is closed at
// shutdown if it implements io.Closer.
func newWriterSink(w io.Writer) (*fileSink, error) {
	if isNilWriter(w) {
		return nil, errors.Wrapf(ErrInvalidFile, "%T", w)
	}
	s := &fileSink{ws: zapcore.AddSync(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	if f, ok := w.(*os.File); ok {
		s.name = f.Name()
	}
	return s, nil
}

// isNilWriter reports whether w holds a nil pointer-like value.
func isNilWriter(w io.Writer) bool {
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// lockPath names the advisory lock file kept next to a log file.
func lockPath(path string) string {
	return path + ".lock"
}

// GenerateFileName returns "<hex monotonic microseconds>.log".
func GenerateFileName() string {
	return fmt.Sprintf("%x.log", core.MonotonicMicros())
}

// createFileSink opens a fresh, truncated log file in dir.
func createFileSink(dir, name string) (*fileSink, error) {
	path := filepath.Join(dir, filepath.Clean(name))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "create log file %s", path)
	}
	return &fileSink{
		name:   path,
		ws:     zapcore.AddSync(f),
		closer: f,
		lock:   flock.New(lockPath(path)),
	}, nil
}

// write writes p, holding the advisory lock when there is one.
func (s *fileSink) write(p []byte) (n int, err error) {
	if s.lock != nil {
		if err := s.lock.Lock(); err != nil {
			return 0, errors.Wrapf(err, "lock %s", s.name)
		}
		defer func() {
			err = multierr.Append(err, errors.Wrapf(s.lock.Unlock(), "unlock %s", s.name))
		}()
	}
	n, err = s.ws.Write(p)
	if err != nil {
		err = errors.Wrap(err, "write log file")
	}
	return n, err
}

// close syncs and closes the sink, then releases and removes the lock
// file.
func (s *fileSink) close() error {
	err := errors.Wrap(s.ws.Sync(), "sync log file")
	if s.closer != nil {
		err = multierr.Append(err, errors.Wrap(s.closer.Close(), "close log file"))
	}
	if s.lock != nil {
		err = multierr.Append(err, errors.Wrap(s.lock.Close(), "release log file lock"))
		if rmErr := os.Remove(s.lock.Path()); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, errors.Wrap(rmErr, "remove log file lock"))
		}
	}
	return err
}

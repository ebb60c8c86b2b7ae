// Package rollfile implements a size-bounded rolling log file: writes append
// to the named file until it would exceed the byte cap, at which point the
// file is renamed to <name>.1 (replacing any previous backup) and a fresh
// file is started.
package rollfile

import (
	"os"
	"sync"
)

// DefaultMaxBytes matches the classic rolling appender cap.
const DefaultMaxBytes = 100000

const backupSuffix = ".1"

type Options struct {
	// MaxBytes is the rotation threshold. DefaultMaxBytes when zero.
	MaxBytes int64
	// Backups is the number of rotated files retained: 0 or 1.
	Backups int
}

// Writer is an io.WriteCloser over the current log file. Write and Close are
// safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	path string
	opts Options
	f    *os.File
	size int64
}

// Open opens path in append mode, creating it if needed. A pre-existing file
// is never truncated; its current size counts toward the cap.
func Open(path string, opts Options) (*Writer, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Writer{path: path, opts: opts, f: f, size: info.Size()}, nil
}

// Write appends p, rotating first when the cap would be exceeded. A single
// write larger than the cap still goes into an empty file whole.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return 0, os.ErrClosed
	}
	if w.size > 0 && w.size+int64(len(p)) > w.opts.MaxBytes {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := w.f.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *Writer) rotate() error {
	if err := w.f.Close(); err != nil {
		return err
	}
	w.f = nil
	if w.opts.Backups > 0 {
		if err := os.Rename(w.path, w.path+backupSuffix); err != nil && !os.IsNotExist(err) {
			return err
		}
	} else if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	w.f = f
	w.size = 0
	return nil
}

// Close releases the file handle. Further writes fail with os.ErrClosed.
// Idempotent.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

// Path returns the file the writer appends to.
func (w *Writer) Path() string { return w.path }

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var errNotDir = errors.New("not a directory")

// Writer creates generated files without ever replacing existing ones.
type Writer struct {
	fs  afero.Fs
	log *zap.Logger
}

// NewWriter returns a Writer on fsys. A nil logger disables logging.
func NewWriter(fsys afero.Fs, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{fs: fsys, log: log}
}

// Write stores content at path. Missing parent directories are created
// first. If path already exists the error wraps ErrAlreadyExists and the
// file is left untouched; other failures wrap ErrDirectoryCreate or
// ErrWrite.
func (w *Writer) Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := w.ensureDir(dir); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDirectoryCreate, dir, err)
	}

	if _, err := w.fs.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	// O_EXCL closes the gap between the Stat above and the create.
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	w.log.Debug("Wrote file", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}

// ensureDir creates dir unless it exists. The nearest existing ancestor
// must be a directory: some filesystems silently turn a file into a
// directory on MkdirAll.
func (w *Writer) ensureDir(dir string) error {
	for p := dir; ; p = filepath.Dir(p) {
		fi, err := w.fs.Stat(p)
		if err == nil {
			if !fi.IsDir() {
				return fmt.Errorf("%s: %w", p, errNotDir)
			}
			if p == dir {
				return nil
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	w.log.Debug("Created directory", zap.String("path", dir))
	return nil
}

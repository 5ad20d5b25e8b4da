package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingOpenFs accepts directory operations but refuses to open files.
type failingOpenFs struct {
	afero.Fs
}

func (f failingOpenFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("disk full")}
}

func TestWriterCreatesParentDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	w := NewWriter(fsys, nil)

	require.NoError(t, w.Write("/src/features/auth/auth.type.ts", []byte("x")))

	ok, err := afero.DirExists(fsys, "/src/features/auth")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := afero.ReadFile(fsys, "/src/features/auth/auth.type.ts")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestWriterRefusesToOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	original := []byte("hand written, keep me")
	require.NoError(t, afero.WriteFile(fsys, "/app/auth/auth.style.ts", original, 0o644))

	w := NewWriter(fsys, nil)
	err := w.Write("/app/auth/auth.style.ts", []byte("generated"))

	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, StatusExists, StatusOf(err))

	got, readErr := afero.ReadFile(fsys, "/app/auth/auth.style.ts")
	require.NoError(t, readErr)
	assert.Equal(t, original, got)
}

func TestWriterDirectoryCreateFailure(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(fsys, nil)

	err := w.Write("/missing/auth.ts", []byte("x"))
	require.ErrorIs(t, err, ErrDirectoryCreate)
	assert.Equal(t, StatusFailed, StatusOf(err))
}

func TestWriterParentIsAFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/auth", []byte("file"), 0o644))

	err := NewWriter(fsys, nil).Write("/app/auth/auth.ts", []byte("x"))
	require.ErrorIs(t, err, ErrDirectoryCreate)
	assert.Equal(t, StatusFailed, StatusOf(err))

	got, readErr := afero.ReadFile(fsys, "/app/auth")
	require.NoError(t, readErr)
	assert.Equal(t, "file", string(got))
}

func TestWriterAncestorIsAFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app", []byte("file"), 0o644))

	err := NewWriter(fsys, nil).Write("/app/features/auth/auth.ts", []byte("x"))
	require.ErrorIs(t, err, ErrDirectoryCreate)

	ok, statErr := afero.Exists(fsys, "/app/features")
	require.NoError(t, statErr)
	assert.False(t, ok)
}

func TestWriterParentIsAFileOnDisk(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "auth")
	require.NoError(t, os.WriteFile(parent, []byte("file"), 0o644))

	err := NewWriter(afero.NewOsFs(), nil).Write(filepath.Join(parent, "auth.ts"), []byte("x"))
	require.ErrorIs(t, err, ErrDirectoryCreate)
}

func TestWriterWriteFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/app", 0o755))

	err := NewWriter(failingOpenFs{base}, nil).Write("/app/auth.ts", []byte("x"))
	require.ErrorIs(t, err, ErrWrite)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, StatusFailed, StatusOf(err))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "created", StatusCreated.String())
	assert.Equal(t, "exists", StatusExists.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "planned", StatusPlanned.String())
}

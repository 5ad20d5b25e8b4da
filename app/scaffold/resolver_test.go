package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePicker returns a fixed answer and counts how often it was asked.
type fakePicker struct {
	path  string
	err   error
	calls int
}

func (p *fakePicker) PickDirectory(context.Context) (string, error) {
	p.calls++
	return p.path, p.err
}

func newFS(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fsys.MkdirAll(d, 0o755))
	}
	return fsys
}

func TestResolveValidHintSkipsPicker(t *testing.T) {
	picker := &fakePicker{path: "/elsewhere"}
	r := NewResolver(newFS(t, "/project/src"), picker, nil)

	got, err := r.Resolve(context.Background(), "/project/src")
	require.NoError(t, err)
	assert.Equal(t, "/project/src", got)
	assert.Zero(t, picker.calls)
}

func TestResolveInvalidHintCancelled(t *testing.T) {
	fsys := newFS(t, "/project")
	require.NoError(t, afero.WriteFile(fsys, "/project/file.txt", nil, 0o644))

	for _, hint := range []string{"/does/not/exist", "/project/file.txt"} {
		picker := &fakePicker{}
		_, err := NewResolver(fsys, picker, nil).Resolve(context.Background(), hint)

		require.ErrorIs(t, err, ErrCancelled, hint)
		assert.ErrorIs(t, err, ErrInvalidDirectory, hint)
		assert.Equal(t, 1, picker.calls)
	}
}

func TestResolveNoHintPicks(t *testing.T) {
	picker := &fakePicker{path: "/project/src"}
	got, err := NewResolver(newFS(t, "/project/src"), picker, nil).Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "/project/src", got)
	assert.Equal(t, 1, picker.calls)
}

func TestResolvePickerOutcomes(t *testing.T) {
	testCases := []struct {
		name    string
		picker  DirectoryPicker
		wantErr error
	}{
		{name: "empty selection", picker: &fakePicker{}, wantErr: ErrCancelled},
		{name: "explicit cancel", picker: &fakePicker{err: ErrCancelled}, wantErr: ErrCancelled},
		{name: "context cancelled", picker: &fakePicker{err: context.Canceled}, wantErr: ErrCancelled},
		{name: "picked a missing path", picker: &fakePicker{path: "/gone"}, wantErr: ErrInvalidDirectory},
		{name: "no picker", picker: nil, wantErr: ErrCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewResolver(newFS(t, "/project"), tc.picker, nil).Resolve(context.Background(), "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResolvePickerFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	_, err := NewResolver(newFS(t), &fakePicker{err: boom}, nil).Resolve(context.Background(), "")

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
}

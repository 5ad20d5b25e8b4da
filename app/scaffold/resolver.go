package scaffold

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DirectoryPicker asks the user for exactly one folder. Returning "" or an
// error wrapping ErrCancelled means the user picked nothing.
type DirectoryPicker interface {
	PickDirectory(ctx context.Context) (string, error)
}

// Resolver decides which directory a feature is generated in.
type Resolver struct {
	fs     afero.Fs
	picker DirectoryPicker
	log    *zap.Logger
}

// NewResolver returns a Resolver. picker may be nil, in which case a
// missing or invalid hint is reported as cancelled.
func NewResolver(fsys afero.Fs, picker DirectoryPicker, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{fs: fsys, picker: picker, log: log}
}

// Resolve returns hint unchanged when it names an existing directory,
// without asking the picker. Otherwise the picker is asked; a cancel yields
// ErrCancelled, joined with ErrInvalidDirectory when a hint was given.
func (r *Resolver) Resolve(ctx context.Context, hint string) (string, error) {
	if hint != "" {
		ok, err := afero.IsDir(r.fs, hint)
		if err == nil && ok {
			return hint, nil
		}
		r.log.Debug("Directory hint rejected", zap.String("hint", hint), zap.Error(err))
	}

	cancelled := func() error {
		if hint != "" {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDirectory, hint, ErrCancelled)
		}
		return ErrCancelled
	}

	if r.picker == nil {
		return "", cancelled()
	}
	picked, err := r.picker.PickDirectory(ctx)
	if err != nil {
		if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
			return "", cancelled()
		}
		return "", fmt.Errorf("picking target directory: %w", err)
	}
	if picked == "" {
		return "", cancelled()
	}

	ok, err := afero.IsDir(r.fs, picked)
	if err != nil || !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidDirectory, picked)
	}
	return picked, nil
}

// Package screens runs the interactive prompts of the create workflow on a
// terminal.
package screens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/featgen/app/scaffold"
	"github.com/Guerrilla-Interactive/featgen/app/screens/picker"
	"github.com/Guerrilla-Interactive/featgen/app/screens/prompt"
)

// Terminal asks the user for a feature name and a target folder. It
// satisfies scaffold.NamePrompter and scaffold.DirectoryPicker.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// StartDir is where the folder picker begins browsing. Defaults to the
	// working directory.
	StartDir string
}

// PromptName shows the single-line name prompt.
func (t Terminal) PromptName(ctx context.Context) (string, error) {
	final, err := t.run(ctx, prompt.NewNameModel())
	if err != nil {
		return "", err
	}
	value, ok := final.(prompt.NameModel).Value()
	if !ok {
		return "", scaffold.ErrCancelled
	}
	return value, nil
}

// PickDirectory shows the folder picker.
func (t Terminal) PickDirectory(ctx context.Context) (string, error) {
	start := t.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		start = wd
	}

	final, err := t.run(ctx, picker.NewFolderModel(start))
	if err != nil {
		return "", err
	}
	dir, ok := final.(picker.FolderModel).Selected()
	if !ok {
		return "", scaffold.ErrCancelled
	}
	return dir, nil
}

func (t Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %w", scaffold.ErrCancelled, err)
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

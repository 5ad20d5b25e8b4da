// Package scaffold runs the create-feature workflow: ask for a name, settle
// on a target directory, then write every template kind into a new feature
// folder.
//
// The workflow moves through PromptingName, ResolvingDirectory and Writing
// to Done. It aborts from the first two states when the name is empty or the
// user cancels. Once writing starts every file is attempted independently:
// an existing or unwritable file is reported and skipped, nothing is rolled
// back and nothing is retried.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Guerrilla-Interactive/featgen/app/casing"
	"github.com/Guerrilla-Interactive/featgen/app/templates"
)

// State is a step of the workflow.
type State int

const (
	StatePromptingName State = iota
	StateResolvingDirectory
	StateWriting
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StatePromptingName:
		return "prompting-name"
	case StateResolvingDirectory:
		return "resolving-directory"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// NamePrompter asks the user for a feature name. Returning "" or an error
// wrapping ErrCancelled aborts the workflow.
type NamePrompter interface {
	PromptName(ctx context.Context) (string, error)
}

// Notifier shows fire-and-forget messages to the user.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Info(string)  {}
func (nopNotifier) Error(string) {}

// Deps are the collaborators of a Scaffolder. FS is required; everything
// else has a default.
type Deps struct {
	FS       afero.Fs
	Prompter NamePrompter
	Picker   DirectoryPicker
	Notifier Notifier
	Logger   *zap.Logger
	// Kinds defaults to templates.AllKinds().
	Kinds   []templates.Kind
	Options templates.Options
	// OptionsFor, when set, replaces Options once the target directory is
	// known.
	OptionsFor func(targetDir string) templates.Options
}

// Scaffolder runs the workflow. It keeps no state between runs.
type Scaffolder struct {
	prompter NamePrompter
	resolver *Resolver
	writer   *Writer
	notifier Notifier
	log      *zap.Logger
	kinds    []templates.Kind
	opts     templates.Options
	optsFor  func(string) templates.Options
}

// New builds a Scaffolder from d.
func New(d Deps) *Scaffolder {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Kinds == nil {
		d.Kinds = templates.AllKinds()
	}
	if d.Options.Language == "" {
		d.Options.Language = templates.TypeScript
	}
	if d.Options.ComponentCase == "" {
		d.Options.ComponentCase = casing.StylePascal
	}
	return &Scaffolder{
		prompter: d.Prompter,
		resolver: NewResolver(d.FS, d.Picker, d.Logger),
		writer:   NewWriter(d.FS, d.Logger),
		notifier: d.Notifier,
		log:      d.Logger,
		kinds:    d.Kinds,
		opts:     d.Options,
		optsFor:  d.OptionsFor,
	}
}

// Request is one invocation of the workflow.
type Request struct {
	// Name skips the name prompt when not blank.
	Name string
	// DirHint is used as the target directory when it is an existing
	// directory.
	DirHint string
	// DryRun plans the files without writing them.
	DryRun bool
}

// Descriptor is one file to generate.
type Descriptor struct {
	Kind    string
	Path    string
	Content []byte
}

// FileResult is the outcome of writing one Descriptor.
type FileResult struct {
	Kind   string
	Path   string
	Status Status
	Err    error
}

// Report describes how far a run got and what it wrote.
type Report struct {
	State      State
	Name       casing.Name
	TargetDir  string
	FeatureDir string
	Files      []FileResult
}

// Count returns the number of files with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Plan derives the feature folder and one Descriptor per kind. It touches
// neither the filesystem nor the user.
func Plan(name casing.Name, targetDir string, kinds []templates.Kind, o templates.Options) (string, []Descriptor) {
	featureDir := filepath.Join(targetDir, name.Param)
	out := make([]Descriptor, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Descriptor{
			Kind:    k.ID,
			Path:    filepath.Join(featureDir, k.FileName(name, o)),
			Content: []byte(k.Render(name, o.Language)),
		})
	}
	return featureDir, out
}

// Run executes the workflow once. The returned error is non-nil only when
// the run aborted; per-file failures are in the Report.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Report, error) {
	report := &Report{State: StatePromptingName}

	name, err := s.promptName(ctx, req.Name)
	if err != nil {
		return s.abort(report, err)
	}
	report.Name = name
	s.notifier.Info(fmt.Sprintf("selected name is: %s", name.Raw))

	report.State = StateResolvingDirectory
	dir, err := s.resolver.Resolve(ctx, req.DirHint)
	if err != nil {
		if errors.Is(err, ErrCancelled) || errors.Is(err, ErrInvalidDirectory) {
			s.notifier.Error("Please select a valid directory")
		}
		return s.abort(report, err)
	}
	report.TargetDir = dir
	s.notifier.Info(fmt.Sprintf("target directory resolved to %s", dir))

	if err := ctx.Err(); err != nil {
		return s.abort(report, fmt.Errorf("%w: %w", ErrCancelled, err))
	}

	opts := s.opts
	if s.optsFor != nil {
		opts = s.optsFor(dir)
	}

	report.State = StateWriting
	featureDir, descs := Plan(name, dir, s.kinds, opts)
	report.FeatureDir = featureDir

	if req.DryRun {
		for _, d := range descs {
			report.Files = append(report.Files, FileResult{Kind: d.Kind, Path: d.Path, Status: StatusPlanned})
		}
		report.State = StateDone
		return report, nil
	}

	report.Files = s.writeAll(descs)
	for _, f := range report.Files {
		switch f.Status {
		case StatusCreated:
			s.notifier.Info(fmt.Sprintf("created file %s", f.Path))
		case StatusExists:
			s.notifier.Error(fmt.Sprintf("file already exists, skipped %s", f.Path))
		default:
			s.notifier.Error(fmt.Sprintf("error on creating file %s: %v", f.Path, f.Err))
		}
	}
	s.notifySummary(report)

	report.State = StateDone
	s.log.Info("Scaffold finished",
		zap.String("feature", name.Param),
		zap.String("dir", featureDir),
		zap.Int("created", report.Count(StatusCreated)),
		zap.Int("exists", report.Count(StatusExists)),
		zap.Int("failed", report.Count(StatusFailed)))
	return report, nil
}

func (s *Scaffolder) promptName(ctx context.Context, preset string) (casing.Name, error) {
	raw := preset
	if strings.TrimSpace(raw) == "" && s.prompter != nil {
		var err error
		raw, err = s.prompter.PromptName(ctx)
		if err != nil {
			if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
				return casing.Name{}, ErrCancelled
			}
			return casing.Name{}, fmt.Errorf("prompting for feature name: %w", err)
		}
	}
	name, err := casing.NewName(raw)
	if err != nil {
		s.notifier.Error("A feature name is required")
		return casing.Name{}, err
	}
	return name, nil
}

// writeAll writes every descriptor. The files are disjoint, so the writes
// run concurrently; each goroutine owns one slot of the result slice.
func (s *Scaffolder) writeAll(descs []Descriptor) []FileResult {
	results := make([]FileResult, len(descs))
	var g errgroup.Group
	for i, d := range descs {
		i, d := i, d
		g.Go(func() error {
			err := s.writer.Write(d.Path, d.Content)
			results[i] = FileResult{Kind: d.Kind, Path: d.Path, Status: StatusOf(err), Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *Scaffolder) notifySummary(r *Report) {
	created := r.Count(StatusCreated)
	total := len(r.Files)
	if created == total {
		s.notifier.Info(fmt.Sprintf("created %d files in %s", created, r.FeatureDir))
		return
	}
	msg := fmt.Sprintf("created %d of %d files in %s (%d already existed, %d failed)",
		created, total, r.FeatureDir, r.Count(StatusExists), r.Count(StatusFailed))
	if r.Count(StatusFailed) > 0 {
		s.notifier.Error(msg)
		return
	}
	s.notifier.Info(msg)
}

func (s *Scaffolder) abort(r *Report, err error) (*Report, error) {
	s.log.Debug("Scaffold aborted", zap.Stringer("state", r.State), zap.Error(err))
	r.State = StateAborted
	return r, err
}

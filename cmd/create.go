package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/featgen/app"
	"github.com/Guerrilla-Interactive/featgen/app/casing"
	"github.com/Guerrilla-Interactive/featgen/app/notify"
	"github.com/Guerrilla-Interactive/featgen/app/project"
	"github.com/Guerrilla-Interactive/featgen/app/scaffold"
	"github.com/Guerrilla-Interactive/featgen/app/screens"
	"github.com/Guerrilla-Interactive/featgen/app/templates"
	"github.com/Guerrilla-Interactive/featgen/app/utils"
	"github.com/Guerrilla-Interactive/featgen/internal/config"
)

type createOptions struct {
	dir           string
	lang          string
	componentCase string
	dryRun        bool
	copy          bool
	noInput       bool
}

func newCreateCmd(c *cli) *cobra.Command {
	var o createOptions
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a React feature folder",
		Long: `Create a feature folder named after the param-case form of the name,
holding five files. Files that already exist are left untouched.

Without a name you are asked for one. Without a valid --dir a folder picker
opens.`,
		Example: `  featgen create
  featgen create "Auth Login" --dir src/features
  featgen create user-profile --lang js --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return c.runCreate(cmd, name, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.dir, "dir", "d", "", "folder to create the feature in")
	f.StringVarP(&o.lang, "lang", "l", "", "ts, js or auto (default from config, else ts)")
	f.StringVar(&o.componentCase, "component-case", "", "component file name case: pascal or param")
	f.BoolVar(&o.dryRun, "dry-run", false, "show the files without writing them")
	f.BoolVar(&o.copy, "copy", false, "copy the feature folder path to the clipboard")
	f.BoolVar(&o.noInput, "no-input", false, "never open a prompt; fail instead")
	return cmd
}

func (c *cli) runCreate(cmd *cobra.Command, name string, o createOptions) error {
	var err error
	lang := c.cfg.Language
	if cmd.Flags().Changed("lang") {
		lang = o.lang
	}
	var fixed templates.Language
	if lang != config.LanguageAuto {
		if fixed, err = templates.ParseLanguage(lang); err != nil {
			return err
		}
	}

	caseName := c.cfg.ComponentFileCase
	if cmd.Flags().Changed("component-case") {
		caseName = o.componentCase
	}
	componentCase, err := casing.ParseStyle(caseName)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	notifier := notify.NewTerminal(out, errOut, c.log)

	deps := scaffold.Deps{
		FS:       c.fs,
		Notifier: notifier,
		Logger:   c.log,
		OptionsFor: func(dir string) templates.Options {
			return c.optionsFor(dir, fixed, componentCase, notifier)
		},
	}
	if !o.noInput {
		term := screens.Terminal{In: c.in, Out: out, StartDir: c.workDir}
		deps.Prompter = term
		deps.Picker = term
	}

	dir := o.dir
	if dir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(c.workDir, dir)
	}

	report, err := scaffold.New(deps).Run(cmd.Context(), scaffold.Request{
		Name:    name,
		DirHint: dir,
		DryRun:  o.dryRun,
	})
	if err != nil {
		return err
	}

	printTree(cmd, report, o.dryRun)

	if (o.copy || c.cfg.CopyPath) && !o.dryRun && report.Count(scaffold.StatusCreated) > 0 {
		if err := c.copy(report.FeatureDir); err != nil {
			notifier.Error(fmt.Sprintf("could not copy %s to the clipboard: %v", report.FeatureDir, err))
		} else {
			notifier.Info(fmt.Sprintf("copied %s to the clipboard", report.FeatureDir))
		}
	}

	if failed := report.Count(scaffold.StatusFailed); failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", scaffold.ErrWrite, failed, len(report.Files))
	}
	return nil
}

// optionsFor settles the language once the target folder is known and
// warns when the project lacks the router the route module imports. An
// empty lang means auto.
func (c *cli) optionsFor(dir string, lang templates.Language, componentCase casing.Style, n scaffold.Notifier) templates.Options {
	o := templates.Options{Language: templates.TypeScript, ComponentCase: componentCase}

	info, found := project.Detect(c.fs, dir)
	if found {
		c.log.Debug("Project detected",
			zap.String("root", info.RootPath),
			zap.String("type", info.Type),
			zap.Strings("packages", info.DetectedPackages))
		if !info.HasDependency("react-router-dom") {
			n.Error(fmt.Sprintf("%s does not depend on react-router-dom, which the route module imports", info.Name))
		}
	}

	switch {
	case lang != "":
		o.Language = lang
	case found && !info.UsesTypeScript():
		o.Language = templates.JavaScript
	}
	return o
}

func printTree(cmd *cobra.Command, r *scaffold.Report, dryRun bool) {
	paths := make([]string, 0, len(r.Files))
	status := make(map[string]scaffold.Status, len(r.Files))
	for _, f := range r.Files {
		rel, err := filepath.Rel(r.TargetDir, f.Path)
		if err != nil {
			rel = f.Path
		}
		paths = append(paths, rel)
		status[rel] = f.Status
	}

	tree := utils.RenderFileTree(utils.BuildFileTree(paths), func(p string) string {
		switch status[p] {
		case scaffold.StatusExists:
			return app.HelpStyle.Render(" (exists)")
		case scaffold.StatusFailed:
			return app.ErrorStyle.Render(" (failed)")
		default:
			return ""
		}
	})

	header := r.TargetDir
	if dryRun {
		header = "Dry run, nothing written in " + r.TargetDir
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.PathStyle.Render(header))
	fmt.Fprint(cmd.OutOrStdout(), tree)
}

// Package cmd wires the featgen command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/featgen/internal/config"
	"github.com/Guerrilla-Interactive/featgen/internal/logging"
)

// skipConfig marks commands that run without loading the config file.
const skipConfig = "featgen/skip-config"

// cli is the state shared by every command of one invocation.
type cli struct {
	version    string
	verbose    bool
	configFile string

	fs      afero.Fs
	in      io.Reader
	workDir string
	homeDir string
	copy    func(string) error

	log *zap.Logger
	cfg config.Config
}

// Execute runs featgen with the process arguments. Interrupts cancel the
// command's context.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	c := &cli{
		version: version,
		fs:      afero.NewOsFs(),
		in:      os.Stdin,
		workDir: wd,
		homeDir: home,
		copy:    clipboard.WriteAll,
	}
	return c.execute(ctx, newRootCmd(c))
}

// execute runs root and flushes the logger afterwards. cobra skips
// PersistentPostRun when a command fails, so the flush lives here.
func (c *cli) execute(ctx context.Context, root *cobra.Command) error {
	defer func() {
		if c.log != nil {
			_ = c.log.Sync()
		}
	}()
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "featgen",
		Short: "Scaffold React feature folders",
		Long: `featgen creates a React feature folder holding a component, a context
provider with its reducer, a props type, a style object and a route module.

Run "featgen create" to be asked for a name and a folder, or pass both:

  featgen create "Auth Login" --dir src/features`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default .featgen.yaml, then ~/.config/featgen/config.yaml)")

	root.AddCommand(
		newCreateCmd(c),
		newConfigCmd(c),
		newTemplatesCmd(c),
		newRenderCmd(c),
		newVersionCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.log == nil {
		logger, err := logging.New(c.verbose)
		if err != nil {
			return err
		}
		c.log = logger
	}
	if _, ok := cmd.Annotations[skipConfig]; ok {
		return nil
	}

	cfg, err := config.Load(config.Options{
		FS:      c.fs,
		File:    c.configFile,
		WorkDir: c.workDir,
		HomeDir: c.homeDir,
	})
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log.Debug("Config loaded",
		zap.String("file", cfg.File),
		zap.String("language", cfg.Language),
		zap.String("component_file_case", cfg.ComponentFileCase))

	return config.CheckMinVersion(cfg.MinVersion, c.version)
}

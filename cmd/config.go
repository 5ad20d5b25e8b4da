package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/featgen/app"
	"github.com/Guerrilla-Interactive/featgen/internal/config"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage featgen settings",
		Long: `featgen reads .featgen.yaml in the working directory, else
~/.config/featgen/config.yaml. FEATGEN_* environment variables override both.`,
	}
	cmd.AddCommand(newConfigInitCmd(c), newConfigShowCmd(c), newConfigValidateCmd(c))
	return cmd
}

func newConfigInitCmd(c *cli) *cobra.Command {
	var (
		force bool
		local bool
	)
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile
			switch {
			case path != "":
			case local:
				path = filepath.Join(c.workDir, config.LocalFileName)
			default:
				path = config.UserFile(c.homeDir)
			}
			if err := config.Init(c.fs, path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&local, "local", false, "write .featgen.yaml in the working directory")
	return cmd
}

func newConfigShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(c.cfg)
			if err != nil {
				return err
			}
			source := c.cfg.File
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", source, data)
			return nil
		},
	}
}

func newConfigValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "validate [file]",
		Short:       "Check a config file against the schema",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = filepath.Join(c.workDir, config.LocalFileName)
			}

			data, err := afero.ReadFile(c.fs, path)
			if err != nil {
				return fmt.Errorf("reading config %s: %w", path, err)
			}
			res, err := config.Validate(data)
			if err != nil {
				return fmt.Errorf("validating config %s: %w", path, err)
			}
			if !res.Valid {
				for _, is := range res.Issues {
					fmt.Fprintln(cmd.ErrOrStderr(), app.ErrorStyle.Render(is.Path+" "+is.Message))
				}
				return fmt.Errorf("%w: %s has %d issue(s)", config.ErrInvalid, path, len(res.Issues))
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.SuccessStyle.Render(path+" is valid"))
			return nil
		},
	}
}

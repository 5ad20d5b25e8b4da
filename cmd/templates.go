package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/featgen/app/casing"
	"github.com/Guerrilla-Interactive/featgen/app/templates"
)

func newTemplatesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the files a feature is made of",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := c.fixedOptions()
			if err != nil {
				return err
			}
			sample, err := casing.NewName("Auth Login")
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("KIND", "FILE", "DESCRIPTION")
			for _, k := range templates.AllKinds() {
				t.Row(k.ID, k.FileName(sample, o), k.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newRenderCmd(c *cli) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "render <kind> <name>",
		Short: "Print one rendered template",
		Example: `  featgen render context "Auth Login"
  featgen render route auth --lang js`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, k := range templates.AllKinds() {
				if strings.HasPrefix(k.ID, toComplete) {
					ids = append(ids, k.ID)
				}
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := templates.GetKind(args[0])
			if !ok {
				return fmt.Errorf("unknown template kind %q", args[0])
			}
			name, err := casing.NewName(args[1])
			if err != nil {
				return err
			}
			o, err := c.fixedOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lang") {
				if o.Language, err = templates.ParseLanguage(lang); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), k.Render(name, o.Language))
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "ts or js (default from config, else ts)")
	return cmd
}

// fixedOptions reads the template options from the config without looking
// at any project; auto falls back to TypeScript.
func (c *cli) fixedOptions() (templates.Options, error) {
	o := templates.DefaultOptions()
	if l, err := templates.ParseLanguage(c.cfg.Language); err == nil {
		o.Language = l
	}
	s, err := casing.ParseStyle(c.cfg.ComponentFileCase)
	if err != nil {
		return o, err
	}
	o.ComponentCase = s
	return o, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templateRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a custom template",
	Long:    `Remove a custom template from config.toml. The file itself is left alone.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runTemplateRemove(cmd, a, args[0])
	},
}

func init() {
	templateCmd.AddCommand(templateRemoveCmd)
}

func runTemplateRemove(cmd *cobra.Command, a *app, name string) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	if err := cfg.RemoveTemplate(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed custom template %s\n", name)
	return nil
}

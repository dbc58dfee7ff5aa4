package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/utils"
)

var templateAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Add or replace a custom template",
	Long: `Register the file at <path> as a custom template. Relative paths are
stored as absolute paths; the file is read each time the template is used.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runTemplateAdd(cmd, a, args[0], args[1])
	},
}

func init() {
	templateCmd.AddCommand(templateAddCmd)
}

func runTemplateAdd(cmd *cobra.Command, a *app, name, path string) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	if err := cfg.AddTemplate(name, path); err != nil {
		return err
	}

	stored, _ := cfg.TemplatePath(name)
	if !utils.FileExists(stored) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s does not exist yet\n", warningLabel.Sprint("Warning"), stored)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added custom template %s => %s\n", name, stored)
	return nil
}

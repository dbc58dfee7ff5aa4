package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/utils"
)

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all custom templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runTemplateList(cmd, a)
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
}

func runTemplateList(cmd *cobra.Command, a *app) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	out := cmd.OutOrStdout()
	templates := cfg.TemplateMap()
	if len(templates) == 0 {
		fmt.Fprintln(out, "No custom templates defined")
		return nil
	}

	for _, name := range sortedNames(templates) {
		path := templates[name]
		if utils.FileExists(path) {
			fmt.Fprintf(out, "%s => %s\n", color.GreenString(name), path)
		} else {
			fmt.Fprintf(out, "%s => %s %s\n", color.GreenString(name), path, color.RedString("(missing)"))
		}
	}
	return nil
}

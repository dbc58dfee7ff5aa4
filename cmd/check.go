package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/ignorefile"
)

var checkPaths []string

var checkCmd = &cobra.Command{
	Use:   "check --path <path> [--path <path>...] <template>...",
	Short: "Test paths against rendered templates",
	Long: `Report whether each --path would be ignored by the given templates.
Paths are relative to the repository root; end a path with "/" to test it as
a directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runCheck(cmd, a, checkPaths, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArrayVarP(&checkPaths, "path", "p", nil, "path to test (repeatable)")
	if err := checkCmd.MarkFlagRequired("path"); err != nil {
		panic(err)
	}
}

func runCheck(cmd *cobra.Command, a *app, paths, names []string) error {
	if len(paths) == 0 {
		return errors.New("at least one --path is required")
	}

	if _, err := a.ensureCache(cmd, false); err != nil {
		return err
	}

	content, err := a.resolver().Contents(names)
	if err != nil {
		return withRefreshHint(err)
	}

	results, err := ignorefile.Match(content, paths)
	if err != nil {
		// bad patterns are skipped, the remaining verdicts still hold
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", warningLabel.Sprint("Warning"), err)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Ignored {
			fmt.Fprintf(out, "%s %s (line %d: %s)\n", color.GreenString("ignored    "), r.Path, r.Line, r.Pattern)
		} else {
			fmt.Fprintf(out, "%s %s\n", color.YellowString("not ignored"), r.Path)
		}
	}
	return nil
}

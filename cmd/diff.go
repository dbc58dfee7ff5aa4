package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/ignorefile"
)

var diffFile string

var diffCmd = &cobra.Command{
	Use:   "diff <template>...",
	Short: "Compare an ignore file with rendered templates",
	Long: `Show a unified diff that turns the current ignore file into the output
'git-ignore <template>... -o <file>' would write.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runDiff(cmd, a, diffFile, args)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVarP(&diffFile, "file", "f", ".gitignore", "ignore file to compare against")
}

func runDiff(cmd *cobra.Command, a *app, file string, names []string) error {
	if _, err := a.ensureCache(cmd, false); err != nil {
		return err
	}

	content, err := a.resolver().Contents(names)
	if err != nil {
		return withRefreshHint(err)
	}
	rendered := renderedFile(content)

	current, err := ignorefile.ReadCurrent(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	diff := ignorefile.Diff(current, rendered, file, "rendered")
	if diff == ignorefile.NoDifferences {
		fmt.Fprintln(cmd.OutOrStdout(), diff)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), ignorefile.Colorize(diff))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "git-ignore version: %s\n", version.GetVersion())

		if version.GetBuildDate() != "unknown" {
			fmt.Fprintf(out, "Build date: %s\n", version.GetBuildDate())
		}

		if version.GetGitCommit() != "unknown" {
			fmt.Fprintf(out, "Git commit: %s\n", version.GetGitCommit())
		}

		fmt.Fprintf(out, "\nProject: %s\n", version.ProjectURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

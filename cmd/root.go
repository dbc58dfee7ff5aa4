package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/ignorefile"
	"github.com/YangQing-Lin/git-ignore/internal/settings"
)

var (
	updateCache bool
	listNames   bool
	listFormat  string
	outputPath  string
	backupFile  bool
	verbose     bool
)

var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "git-ignore [templates...]",
	Short: "Quickly and easily fetch .gitignore templates from gitignore.io",
	Long: `git-ignore prints .gitignore templates from gitignore.io.

The catalog is downloaded once and cached locally; pass -u to refresh it.
Aliases and custom templates from config.toml are resolved alongside the
catalog (see 'git-ignore init').

Usage:
  git-ignore rust intellij    print the rust and intellij templates
  git-ignore -l               list every known template name
  git-ignore -l java          list names containing "java"
  git-ignore -u               refresh the cached catalog`,
	// positional args are template names, not subcommands
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
	RunE:              runRoot,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.New(color.FgRed, color.Bold).Sprint("Error"), err)
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&updateCache, "update", "u", false, "update the cached catalog before resolving")
	flags.BoolVarP(&listNames, "list", "l", false, "list template names, optionally filtered by the given terms")
	flags.StringVar(&listFormat, "format", formatText, "list output format: text, json or yaml")
	flags.StringVarP(&outputPath, "output", "o", "", "write the rendered templates to a file instead of stdout")
	flags.BoolVar(&backupFile, "backup", false, "with --output, copy an existing file to <file>.backup first")

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	settings.RegisterFlags(persistent)
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if _, err := a.ensureCache(cmd, updateCache); err != nil {
		return err
	}

	if listNames {
		names, err := a.resolver().Names(args)
		if err != nil {
			return withRefreshHint(err)
		}
		return printNames(cmd.OutOrStdout(), names, listFormat)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	content, err := a.resolver().Contents(args)
	if err != nil {
		return withRefreshHint(err)
	}

	if outputPath != "" {
		if err := ignorefile.Write(outputPath, renderedFile(content), backupFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: Wrote %s\n", infoLabel.Sprint("Info"), outputPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderedFile(content))
	return nil
}

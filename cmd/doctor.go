package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the cache and config for problems",
	Long: `Report where the cache and config live, how many templates are cached,
and any alias targets or custom template files that cannot be resolved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runDoctor(cmd, a)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	ok := color.GreenString("ok")

	fmt.Fprintf(out, "Catalog:  %s\n", a.catalog.URL())
	if a.settings.Portable {
		fmt.Fprintln(out, "Mode:     portable")
	}

	var problems *multierror.Error

	fmt.Fprintf(out, "Cache:    %s ", a.store.Path())
	templates, err := a.store.Load()
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s (%d templates)\n", ok, len(templates))
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(out, color.YellowString("missing, run 'git-ignore -u'"))
	default:
		fmt.Fprintln(out, color.RedString("unreadable"))
		problems = multierror.Append(problems, err)
	}

	fmt.Fprintf(out, "Config:   %s ", a.settings.ConfigDir)
	if a.config == nil {
		fmt.Fprintln(out, color.YellowString("no config.toml, run 'git-ignore init'"))
	} else {
		fmt.Fprintf(out, "%s (%d aliases, %d custom templates)\n", ok, len(a.config.AliasMap()), len(a.config.TemplateMap()))
		// alias targets can only be checked against a loaded cache
		if templates != nil {
			if err := a.config.Check(templates); err != nil {
				problems = multierror.Append(problems, err)
			}
		}
	}

	if err := problems.ErrorOrNil(); err != nil {
		return fmt.Errorf("doctor found problems: %w", err)
	}
	fmt.Fprintln(out, "No problems found")
	return nil
}

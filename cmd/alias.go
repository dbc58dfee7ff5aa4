package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage aliases",
	Long: `Manage aliases in config.toml. An alias is a name that expands to
several catalog templates, e.g. "web" => node, react, dotenv.`,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runAliasList(cmd, a)
	},
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <name> <template>...",
	Short: "Add or replace an alias",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runAliasAdd(cmd, a, args[0], args[1:])
	},
}

var aliasRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an alias",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runAliasRemove(cmd, a, args[0])
	},
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	aliasCmd.AddCommand(aliasListCmd)
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
}

func runAliasList(cmd *cobra.Command, a *app) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	out := cmd.OutOrStdout()
	aliases := cfg.AliasMap()
	if len(aliases) == 0 {
		fmt.Fprintln(out, "No aliases defined")
		return nil
	}

	for _, name := range sortedNames(aliases) {
		fmt.Fprintf(out, "%s => %s\n", color.GreenString(name), strings.Join(aliases[name], ", "))
	}
	return nil
}

func runAliasAdd(cmd *cobra.Command, a *app, name string, targets []string) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	if err := cfg.AddAlias(name, targets); err != nil {
		return err
	}

	// the store is optional here, an alias may be added before the first fetch
	if templates, err := a.store.Load(); err == nil {
		for _, target := range targets {
			if _, ok := templates[target]; !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %q is not in the cached catalog\n", warningLabel.Sprint("Warning"), target)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added alias %s\n", name)
	return nil
}

func runAliasRemove(cmd *cobra.Command, a *app, name string) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}

	if err := cfg.RemoveAlias(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed alias %s\n", name)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/git-ignore/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty config file",
	Long: `Create config.toml in the config directory. Aliases and custom
templates are stored there. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runInit(cmd, a, initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, a *app, force bool) error {
	cfg, err := config.Create(config.Path(a.settings.ConfigDir), force)
	if err != nil {
		return err
	}
	a.config = cfg

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", cfg.File())
	return nil
}

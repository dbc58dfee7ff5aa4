package cmd

import (
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage custom templates",
	Long: `Manage custom templates in config.toml. A custom template is a name
backed by a local file whose content is printed like a catalog template.`,
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

var openConfigCmd = &cobra.Command{
	Use:   "open-config",
	Short: "Open the config file",
	Long: `Open config.toml in $VISUAL or $EDITOR. Without an editor the config
directory is opened in the system file manager.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runOpenConfig(cmd, a)
	},
}

// runProcess starts c, waiting for it when wait is set.
var runProcess = func(c *exec.Cmd, wait bool) error {
	if wait {
		return c.Run()
	}
	return c.Start()
}

func init() {
	rootCmd.AddCommand(openConfigCmd)
}

func runOpenConfig(cmd *cobra.Command, a *app) error {
	cfg := a.requireConfig(cmd)
	if cfg == nil {
		return nil
	}
	path := cfg.File()

	editorCmd, err := editorCommand(path)
	if err != nil {
		return err
	}
	if editorCmd != nil {
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr
		log.Debugw("opening config in editor", "editor", editorCmd.Path, "args", editorCmd.Args)
		if err := runProcess(editorCmd, true); err != nil {
			return fmt.Errorf("run editor: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n", dir)

	launcher, err := launcherCommand(dir)
	if err != nil {
		return err
	}
	if err := runProcess(launcher, false); err != nil {
		return fmt.Errorf("open file manager: %w", err)
	}
	return nil
}

// editorCommand builds the $VISUAL or $EDITOR command for path. It returns nil
// when neither is set.
func editorCommand(path string) (*exec.Cmd, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return nil, nil
	}

	args, err := shellwords.Parse(editor)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", editor, err)
	}
	if len(args) == 0 {
		return nil, nil
	}

	args = append(args, path)
	return exec.Command(args[0], args[1:]...), nil
}

func launcherCommand(dir string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", dir), nil
	case "darwin":
		return exec.Command("open", dir), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", dir), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

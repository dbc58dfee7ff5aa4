package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/YangQing-Lin/git-ignore/internal/catalog"
	"github.com/YangQing-Lin/git-ignore/internal/config"
	"github.com/YangQing-Lin/git-ignore/internal/refresh"
	"github.com/YangQing-Lin/git-ignore/internal/resolve"
	"github.com/YangQing-Lin/git-ignore/internal/settings"
	"github.com/YangQing-Lin/git-ignore/internal/store"
)

var log = logging.Logger("git-ignore/cmd")

// httpClient replaces the catalog transport when set. Tests use it to serve
// canned catalogs.
var httpClient *http.Client

// stdoutIsTerminal reports whether colored output makes sense.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	infoLabel    = color.New(color.FgGreen, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
)

// setupCommand runs before every command: it applies --verbose and the color
// preference.
func setupCommand(cmd *cobra.Command, _ []string) error {
	if verbose {
		logging.SetAllLoggers(logging.LevelDebug)
	}

	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if s.NoColor || !stdoutIsTerminal() {
		color.NoColor = true
	}
	return nil
}

// app bundles the stores and clients one invocation works with.
type app struct {
	settings *settings.Settings
	store    *store.Store
	config   *config.Config
	catalog  *catalog.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromDir(s.ConfigDir)
	if err != nil {
		return nil, err
	}

	opts := s.CatalogOptions()
	if httpClient != nil {
		opts = append(opts, catalog.WithHTTPClient(httpClient))
	}

	log.Debugw("settings resolved",
		"cacheDir", s.CacheDir,
		"configDir", s.ConfigDir,
		"catalogURL", s.CatalogURL,
		"portable", s.Portable,
		"config", cfg != nil,
	)

	return &app{
		settings: s,
		store:    store.New(s.CacheDir),
		config:   cfg,
		catalog:  catalog.New(s.CatalogURL, opts...),
	}, nil
}

func (a *app) controller(out io.Writer) *refresh.Controller {
	return refresh.New(a.store, a.catalog, out)
}

func (a *app) ensureCache(cmd *cobra.Command, force bool) (refresh.State, error) {
	return a.controller(cmd.ErrOrStderr()).Ensure(cmd.Context(), force)
}

func (a *app) resolver() *resolve.Resolver {
	if a.config == nil {
		return resolve.New(a.store, nil, a.catalog.Source())
	}
	return resolve.New(a.store, a.config, a.catalog.Source())
}

// requireConfig returns the loaded config, or prints a notice and returns nil
// when there is none.
func (a *app) requireConfig(cmd *cobra.Command) *config.Config {
	if a.config == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s (run 'git-ignore init' to create %s)\n",
			warningLabel.Sprint("No config found"), config.Path(a.settings.ConfigDir))
	}
	return a.config
}

// renderedFile is the text printed for content on stdout. -o writes it and
// diff compares against it.
func renderedFile(content string) string {
	return content + "\n"
}

// withRefreshHint tells the user how to recover from a missing cache file.
func withRefreshHint(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w (run 'git-ignore -u' to refresh the cache)", err)
	}
	return err
}

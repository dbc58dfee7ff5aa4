// Package refresh downloads the catalog and swaps it into the template store.
package refresh

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	logging "github.com/ipfs/go-log/v2"

	"github.com/YangQing-Lin/git-ignore/internal/store"
)

var log = logging.Logger("git-ignore/refresh")

// Fetcher returns the raw catalog document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// State describes what Ensure did.
type State int

const (
	// StateCached means the existing cache was used as-is.
	StateCached State = iota
	// StateUpdated means a refresh was requested and completed.
	StateUpdated
	// StateRecovered means the cache was missing and had to be fetched.
	StateRecovered
)

func (s State) String() string {
	switch s {
	case StateCached:
		return "cached"
	case StateUpdated:
		return "updated"
	case StateRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

var (
	infoLabel    = color.New(color.FgGreen, color.Bold)
	warningLabel = color.New(color.FgRed, color.Bold)
)

// Controller keeps the template store in sync with the remote catalog.
type Controller struct {
	store   *store.Store
	fetcher Fetcher
	out     io.Writer
}

// New creates a controller. Status lines are written to out.
func New(s *store.Store, fetcher Fetcher, out io.Writer) *Controller {
	if out == nil {
		out = io.Discard
	}
	return &Controller{
		store:   s,
		fetcher: fetcher,
		out:     out,
	}
}

// Update fetches the whole catalog and replaces the cache with it. The payload
// is decoded before the swap so a bad download never clobbers a good cache.
func (c *Controller) Update(ctx context.Context) error {
	if err := c.store.EnsureDir(); err != nil {
		return err
	}

	raw, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	templates, err := store.Decode(raw)
	if err != nil {
		return fmt.Errorf("downloaded catalog: %w", err)
	}

	if err := c.store.Replace(raw); err != nil {
		return err
	}

	log.Infow("catalog updated", "templates", len(templates), "path", c.store.Path())
	fmt.Fprintf(c.out, "%s: Update successful\n", infoLabel.Sprint("Info"))
	return nil
}

// Ensure makes sure a cache is available. forceUpdate always refreshes; a
// missing cache is refreshed with a warning; otherwise the cache is used and a
// reminder about -u is printed.
func (c *Controller) Ensure(ctx context.Context, forceUpdate bool) (State, error) {
	switch {
	case forceUpdate:
		if err := c.Update(ctx); err != nil {
			return StateUpdated, err
		}
		return StateUpdated, nil

	case !c.store.Exists():
		fmt.Fprintf(c.out, "%s: Cache directory or ignore file not found, attempting update.\n", warningLabel.Sprint("Warning"))
		if err := c.Update(ctx); err != nil {
			return StateRecovered, err
		}
		return StateRecovered, nil

	default:
		fmt.Fprintf(c.out, "%s: You are using cached results, pass '-u' to update the cache\n\n", infoLabel.Sprint("Info"))
		return StateCached, nil
	}
}

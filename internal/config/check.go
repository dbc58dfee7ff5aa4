package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/YangQing-Lin/git-ignore/internal/store"
)

// Check reports alias targets that are missing from templates and custom
// templates whose files cannot be read. Neither is fatal at render time; this
// is for the doctor command.
func (c *Config) Check(templates store.Templates) error {
	if c == nil {
		return nil
	}

	var result *multierror.Error

	for _, name := range sortedKeys(c.Aliases) {
		for _, target := range c.Aliases[name] {
			if _, ok := templates[target]; !ok {
				result = multierror.Append(result, fmt.Errorf("alias %s: unknown template %q", name, target))
			}
		}
	}

	for _, name := range sortedKeys(c.Templates) {
		path := c.Templates[name]
		info, err := os.Stat(path)
		switch {
		case err != nil:
			result = multierror.Append(result, fmt.Errorf("custom template %s: %w", name, err))
		case info.IsDir():
			result = multierror.Append(result, fmt.Errorf("custom template %s: %s is a directory", name, path))
		}
	}

	return result.ErrorOrNil()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

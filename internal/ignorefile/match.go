// Package ignorefile works with rendered ignore-pattern text: comparing it to a
// file on disk, testing paths against it and writing it out.
package ignorefile

import (
	"fmt"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/hashicorp/go-multierror"
)

// Result is the verdict for one path.
type Result struct {
	Path    string
	Ignored bool
	// Pattern is the last pattern that matched, empty when none did.
	Pattern string
	Line    int
}

// Match evaluates paths against content using gitignore rules. Paths are
// relative to the directory the ignore file would live in; a trailing slash
// marks a directory. Patterns that fail to parse are skipped and reported in
// the returned error alongside the results.
func Match(content string, paths []string) ([]Result, error) {
	var parseErrs *multierror.Error
	ignore := gitignore.New(strings.NewReader(content), "", func(e gitignore.Error) bool {
		parseErrs = multierror.Append(parseErrs, fmt.Errorf("line %d: %s", e.Position().Line, e.Error()))
		return true
	})

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		isDir := strings.HasSuffix(path, "/")
		rel := strings.TrimPrefix(strings.TrimSuffix(path, "/"), "./")

		result := Result{Path: path}
		if match := ignore.Relative(rel, isDir); match != nil {
			result.Ignored = match.Ignore()
			result.Pattern = match.String()
			result.Line = match.Position().Line
		}
		results = append(results, result)
	}

	return results, parseErrs.ErrorOrNil()
}

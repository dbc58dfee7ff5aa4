// Package resolve turns requested template names into either a sorted name
// listing or rendered ignore-file content.
package resolve

import (
	"fmt"
	"os"
	"sort"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/YangQing-Lin/git-ignore/internal/store"
)

var log = logging.Logger("git-ignore/resolve")

// HeaderPrefix starts the line prepended to non-empty rendered output.
const HeaderPrefix = "\n\n### Created by "

// TemplateSource provides the cached catalog snapshot.
type TemplateSource interface {
	Load() (store.Templates, error)
}

// Overrides provides user aliases and custom templates. A nil *config.Config
// satisfies it and contributes nothing.
type Overrides interface {
	Alias(name string) ([]string, bool)
	TemplatePath(name string) (string, bool)
	Names() []string
}

// TemplateError is returned when a custom template's file cannot be read.
type TemplateError struct {
	Name string
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("custom template %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Resolver matches names against the catalog and the user's overrides.
type Resolver struct {
	src       TemplateSource
	overrides Overrides
	source    string
}

// New creates a resolver. source is the catalog site named in the header of
// rendered output.
func New(src TemplateSource, overrides Overrides, source string) *Resolver {
	if overrides == nil {
		overrides = noOverrides{}
	}
	return &Resolver{
		src:       src,
		overrides: overrides,
		source:    source,
	}
}

// Names lists every known name when requested is empty. Otherwise it keeps
// each known name once per requested term it contains, so a name matching two
// terms appears twice. The result is sorted.
func (r *Resolver) Names(requested []string) ([]string, error) {
	universe, err := r.universe()
	if err != nil {
		return nil, err
	}

	var result []string
	if len(requested) == 0 {
		result = append(result, universe...)
	} else {
		for _, candidate := range universe {
			for _, term := range requested {
				if strings.Contains(candidate, term) {
					result = append(result, candidate)
				}
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

func (r *Resolver) universe() ([]string, error) {
	templates, err := r.src.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(templates))
	names := make([]string, 0, len(templates))
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for key := range templates {
		add(key)
	}
	for _, name := range r.overrides.Names() {
		add(name)
	}
	return names, nil
}

// Contents renders requested names in order. Aliases win over catalog keys,
// which win over custom templates. Names and alias targets that match nothing
// are skipped without error. Non-empty output is prefixed with a header naming
// the catalog source.
func (r *Resolver) Contents(requested []string) (string, error) {
	templates, err := r.src.Load()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for _, name := range requested {
		if targets, ok := r.overrides.Alias(name); ok {
			for _, target := range targets {
				if tmpl, ok := templates[target]; ok {
					result.WriteString(tmpl.Contents)
				} else {
					log.Debugw("alias target not in catalog", "alias", name, "target", target)
				}
			}
			continue
		}

		if tmpl, ok := templates[name]; ok {
			result.WriteString(tmpl.Contents)
			continue
		}

		if path, ok := r.overrides.TemplatePath(name); ok {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", &TemplateError{Name: name, Path: path, Err: err}
			}
			result.Write(data)
			continue
		}

		log.Debugw("no template matched", "name", name)
	}

	if result.Len() == 0 {
		return "", nil
	}
	return HeaderPrefix + r.source + result.String(), nil
}

type noOverrides struct{}

func (noOverrides) Alias(string) ([]string, bool)      { return nil, false }
func (noOverrides) TemplatePath(string) (string, bool) { return "", false }
func (noOverrides) Names() []string                    { return nil }

//go:build property
// +build property

package resolve

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/YangQing-Lin/git-ignore/internal/store"
)

func snapshotOf(keys []string) *staticSource {
	templates := store.Templates{}
	for _, key := range keys {
		templates[key] = store.Template{Key: key, Contents: key + "\n"}
	}
	return &staticSource{templates: templates}
}

// TestResolverProperties checks listing and rendering invariants over random
// snapshots.
func TestResolverProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("empty request lists every key once, sorted", prop.ForAll(
		func(keys []string) bool {
			src := snapshotOf(keys)
			got, err := New(src, nil, source).Names(nil)
			if err != nil {
				return false
			}
			want := src.templates.Keys()
			if len(want) == 0 {
				return len(got) == 0
			}
			return reflect.DeepEqual(want, got)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("listing is sorted and idempotent", prop.ForAll(
		func(keys []string, terms []string) bool {
			r := New(snapshotOf(keys), nil, source)
			first, err := r.Names(terms)
			if err != nil {
				return false
			}
			second, err := r.Names(terms)
			if err != nil {
				return false
			}
			return sort.StringsAreSorted(first) && reflect.DeepEqual(first, second)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOfN(3, gen.AlphaString()),
	))

	properties.Property("every listed name contains a requested term", prop.ForAll(
		func(keys []string, terms []string) bool {
			got, err := New(snapshotOf(keys), nil, source).Names(terms)
			if err != nil {
				return false
			}
			for _, name := range got {
				matched := false
				for _, term := range terms {
					if strings.Contains(name, term) {
						matched = true
						break
					}
				}
				if !matched {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOfN(2, gen.AlphaString().SuchThat(func(s string) bool { return s != "" })),
	))

	properties.Property("unknown names leave output unchanged", prop.ForAll(
		func(keys []string, known string) bool {
			src := snapshotOf(append(keys, known))
			r := New(src, nil, source)
			before, err := r.Contents([]string{known})
			if err != nil {
				return false
			}
			after, err := r.Contents([]string{known, "\x00not-a-template"})
			if err != nil {
				return false
			}
			return before == after
		},
		gen.SliceOf(gen.Identifier()),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

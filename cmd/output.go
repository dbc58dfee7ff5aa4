package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func printNames(w io.Writer, names []string, format string) error {
	if names == nil {
		names = []string{}
	}

	switch format {
	case formatText, "":
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil

	case formatJSON:
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(names); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

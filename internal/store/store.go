// Package store persists the gitignore.io catalog snapshot on disk.
//
// The snapshot is one JSON document keyed by template key. It is only ever
// replaced wholesale; readers decode it on every lookup.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	logging "github.com/ipfs/go-log/v2"

	"github.com/YangQing-Lin/git-ignore/internal/utils"
)

var log = logging.Logger("git-ignore/store")

// FileName is the name of the snapshot inside the cache directory.
const FileName = "ignore.json"

// Template is one catalog entry.
type Template struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Contents string `json:"contents"`
}

// Templates maps template key to its record.
type Templates map[string]Template

// Keys returns the template keys in lexicographic order.
func (t Templates) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Store is the on-disk template cache rooted at a cache directory.
type Store struct {
	dir  string
	path string
}

// New returns a store for cacheDir. Nothing is touched on disk.
func New(cacheDir string) *Store {
	return &Store{
		dir:  cacheDir,
		path: filepath.Join(cacheDir, FileName),
	}
}

// Dir returns the cache directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the cache directory or the snapshot file is present.
func (s *Store) Exists() bool {
	return utils.FileExists(s.dir) || utils.FileExists(s.path)
}

// Load decodes the persisted snapshot.
func (s *Store) Load() (Templates, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ReadError{Path: s.path, Kind: ErrNotFound, Err: err}
		}
		return nil, &ReadError{Path: s.path, Err: err}
	}

	templates, err := Decode(data)
	if err != nil {
		var rerr *ReadError
		if errors.As(err, &rerr) {
			rerr.Path = s.path
		}
		return nil, err
	}

	log.Debugw("loaded template cache", "path", s.path, "templates", len(templates))
	return templates, nil
}

// Replace overwrites the snapshot with raw, creating the cache directory first.
func (s *Store) Replace(raw []byte) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}

	if err := utils.AtomicWriteFile(s.path, raw, 0644); err != nil {
		return &WriteError{Path: s.path, Op: "write", Err: err}
	}

	log.Debugw("replaced template cache", "path", s.path, "bytes", len(raw))
	return nil
}

// EnsureDir creates the cache directory if it is missing.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &WriteError{Path: s.dir, Op: "mkdir", Err: err}
	}
	return nil
}

// Decode parses a catalog document. It accepts exactly a JSON object of
// records; anything else is ErrMalformed.
func Decode(raw []byte) (Templates, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ReadError{Kind: ErrMalformed, Err: errors.New("expected a JSON object of templates")}
	}

	var templates Templates
	if err := json.Unmarshal(trimmed, &templates); err != nil {
		return nil, &ReadError{Kind: ErrMalformed, Err: err}
	}
	if templates == nil {
		templates = Templates{}
	}
	return templates, nil
}

// Package config manages the user's override file: aliases that expand to
// several catalog templates, and custom templates backed by local files.
//
// A missing override file is represented by a nil *Config. Every read method
// is safe on a nil receiver and behaves as if no overrides were defined.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/YangQing-Lin/git-ignore/internal/utils"
)

var log = logging.Logger("git-ignore/config")

// FileName is the override file inside the config directory.
const FileName = "config.toml"

var (
	ErrConfigExists     = errors.New("config file already exists")
	ErrAliasNotFound    = errors.New("alias not found")
	ErrTemplateNotFound = errors.New("custom template not found")
	ErrInvalidName      = errors.New("name must not be empty or contain whitespace")
	ErrNoTargets        = errors.New("alias needs at least one template")
)

// Config is the persisted override document.
type Config struct {
	Aliases   map[string][]string `toml:"aliases"`
	Templates map[string]string   `toml:"templates"`

	path string
}

// Path returns the override file location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// FromDir loads the override file from configDir. It returns nil, nil when the
// file does not exist.
func FromDir(configDir string) (*Config, error) {
	return Load(Path(configDir))
}

// Load reads the override file at path. It returns nil, nil when the file does
// not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugw("no config file", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{path: path}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.init()

	log.Debugw("loaded config", "path", path, "aliases", len(cfg.Aliases), "templates", len(cfg.Templates))
	return cfg, nil
}

// Create writes an empty override file at path. An existing file is only
// replaced when force is set.
func Create(path string, force bool) (*Config, error) {
	if !force && utils.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	cfg := &Config{path: path}
	cfg.init()
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) init() {
	if c.Aliases == nil {
		c.Aliases = map[string][]string{}
	}
	if c.Templates == nil {
		c.Templates = map[string]string{}
	}
}

// File returns where the config is persisted.
func (c *Config) File() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Save persists the config atomically.
func (c *Config) Save() error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := utils.AtomicWriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	log.Debugw("saved config", "path", c.path)
	return nil
}

// AliasMap returns the aliases keyed by name.
func (c *Config) AliasMap() map[string][]string {
	if c == nil {
		return map[string][]string{}
	}
	return c.Aliases
}

// TemplateMap returns the custom template paths keyed by name.
func (c *Config) TemplateMap() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return c.Templates
}

// Alias returns the targets of the named alias.
func (c *Config) Alias(name string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	targets, ok := c.Aliases[name]
	return targets, ok
}

// TemplatePath returns the file registered for a custom template.
func (c *Config) TemplatePath(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	path, ok := c.Templates[name]
	return path, ok
}

// Names returns alias and custom template names, sorted and deduplicated.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(c.Aliases)+len(c.Templates))
	for name := range c.Aliases {
		seen[name] = struct{}{}
	}
	for name := range c.Templates {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddAlias sets name to expand to targets, replacing any existing alias.
// Repeated targets are kept once, in first-seen order.
func (c *Config) AddAlias(name string, targets []string) error {
	if err := validateName(name); err != nil {
		return err
	}

	unique := make([]string, 0, len(targets))
	seen := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		unique = append(unique, target)
	}
	if len(unique) == 0 {
		return ErrNoTargets
	}

	c.Aliases[name] = unique
	return c.Save()
}

// RemoveAlias deletes the named alias.
func (c *Config) RemoveAlias(name string) error {
	if _, ok := c.Aliases[name]; !ok {
		return fmt.Errorf("%w: %s", ErrAliasNotFound, name)
	}
	delete(c.Aliases, name)
	return c.Save()
}

// AddTemplate registers a custom template stored at path. Relative paths are
// resolved against the working directory; the file is not read until use.
func (c *Config) AddTemplate(name, path string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("custom template %s: empty path", name)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve template path: %w", err)
	}

	c.Templates[name] = abs
	return c.Save()
}

// RemoveTemplate deletes the named custom template. The file itself is left alone.
func (c *Config) RemoveTemplate(name string) error {
	if _, ok := c.Templates[name]; !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	delete(c.Templates, name)
	return c.Save()
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Package settings resolves runtime settings from flags, GIT_IGNORE_*
// environment variables and platform defaults, in that order.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YangQing-Lin/git-ignore/internal/catalog"
	"github.com/YangQing-Lin/git-ignore/internal/portable"
)

// AppName names the per-user cache and config directories.
const AppName = "git-ignore"

// EnvPrefix prefixes every environment override, e.g. GIT_IGNORE_CACHE_DIR.
const EnvPrefix = "GIT_IGNORE"

// Setting keys.
const (
	KeyCacheDir     = "cache_dir"
	KeyConfigDir    = "config_dir"
	KeyCatalogURL   = "catalog_url"
	KeyHTTPTimeout  = "http_timeout"
	KeyHTTPRetryMax = "http_retry_max"
	KeyNoColor      = "no_color"
)

// flag name -> setting key
var flagKeys = map[string]string{
	"cache-dir":   KeyCacheDir,
	"config-dir":  KeyConfigDir,
	"catalog-url": KeyCatalogURL,
	"no-color":    KeyNoColor,
}

// Settings is resolved once per invocation and passed to the stores.
type Settings struct {
	CacheDir     string
	ConfigDir    string
	CatalogURL   string
	HTTPTimeout  time.Duration
	HTTPRetryMax int
	NoColor      bool
	Portable     bool
}

// RegisterFlags adds the persistent flags that Load understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("cache-dir", "", "directory holding the downloaded template catalog")
	flags.String("config-dir", "", "directory holding config.toml (aliases and custom templates)")
	flags.String("catalog-url", "", "catalog endpoint to download templates from")
	flags.Bool("no-color", false, "disable colored output")
}

// Load resolves settings. flags may be nil.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	isPortable := portable.IsPortableMode()
	cacheDir, configDir, err := defaultDirs(isPortable)
	if err != nil {
		return nil, err
	}

	v.SetDefault(KeyCacheDir, cacheDir)
	v.SetDefault(KeyConfigDir, configDir)
	v.SetDefault(KeyCatalogURL, catalog.DefaultURL)
	v.SetDefault(KeyHTTPTimeout, 30*time.Second)
	v.SetDefault(KeyHTTPRetryMax, 0)
	v.SetDefault(KeyNoColor, false)

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	s := &Settings{
		CacheDir:     v.GetString(KeyCacheDir),
		ConfigDir:    v.GetString(KeyConfigDir),
		CatalogURL:   v.GetString(KeyCatalogURL),
		HTTPTimeout:  v.GetDuration(KeyHTTPTimeout),
		HTTPRetryMax: v.GetInt(KeyHTTPRetryMax),
		NoColor:      v.GetBool(KeyNoColor),
		Portable:     isPortable,
	}

	// an empty flag or env value falls back to the default
	if s.CacheDir == "" {
		s.CacheDir = cacheDir
	}
	if s.ConfigDir == "" {
		s.ConfigDir = configDir
	}
	if s.CatalogURL == "" {
		s.CatalogURL = catalog.DefaultURL
	}
	if s.HTTPRetryMax < 0 {
		return nil, fmt.Errorf("%s must not be negative: %d", KeyHTTPRetryMax, s.HTTPRetryMax)
	}

	return s, nil
}

// CatalogOptions converts the HTTP settings into catalog client options.
func (s *Settings) CatalogOptions() []catalog.Option {
	return []catalog.Option{
		catalog.WithTimeout(s.HTTPTimeout),
		catalog.WithRetryMax(s.HTTPRetryMax),
	}
}

func defaultDirs(isPortable bool) (string, string, error) {
	if isPortable {
		cacheDir, err := portable.GetPortableCacheDir()
		if err != nil {
			return "", "", fmt.Errorf("get portable cache dir: %w", err)
		}
		configDir, err := portable.GetPortableConfigDir()
		if err != nil {
			return "", "", fmt.Errorf("get portable config dir: %w", err)
		}
		return cacheDir, configDir, nil
	}

	cacheBase, err := os.UserCacheDir()
	if err != nil {
		return "", "", fmt.Errorf("get user cache dir: %w", err)
	}
	configBase, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(cacheBase, AppName), filepath.Join(configBase, AppName), nil
}

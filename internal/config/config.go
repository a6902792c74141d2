// Package config loads and persists the tool configuration as a TOML
// file, by default under ~/.oposearch/config.toml. All settings have
// working defaults so the tool runs unconfigured from a checkout root.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool settings.
type Config struct {
	// ContentDir is the content root scanned for blog front matter.
	ContentDir string `toml:"content_dir"`

	// IndexPath is where the catalog artifact is written and read.
	IndexPath string `toml:"index_path"`

	// SiteURL, when set, lets the search commands fetch the catalog
	// over HTTP from the published site instead of IndexPath.
	SiteURL string `toml:"site_url"`

	// ResultLimit caps the results printed by the search command.
	ResultLimit int `toml:"result_limit"`

	// ListenAddr is the bind address of the serve command.
	ListenAddr string `toml:"listen_addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ContentDir:  "blog/posts",
		IndexPath:   "search-index.json",
		ResultLimit: 10,
		ListenAddr:  ":8765",
	}
}

// DefaultPath returns ~/.oposearch/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".oposearch", "config.toml"), nil
}

// Load reads the configuration at path, filling unset fields with
// defaults. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = Default().ResultLimit
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	return cfg, nil
}

// Save writes the configuration to path with restricted permissions,
// creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/julianshen/pricemap/internal/catalog"
)

// Config represents the top-level application configuration.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Catalog CatalogConfig `toml:"catalog"`
	View    ViewConfig    `toml:"view"`
	Diagram DiagramConfig `toml:"diagram"`
	Log     LogConfig     `toml:"log"`
}

// CacheConfig holds settings for the snapshot cache database.
type CacheConfig struct {
	Path   string `toml:"path"`
	Expiry string `toml:"expiry"`
}

// CatalogConfig selects where the catalog is loaded from. An empty File
// means the compiled-in catalog.
type CatalogConfig struct {
	File string `toml:"file"`
}

// ViewConfig holds the filter tabs selected at startup.
type ViewConfig struct {
	Provider string `toml:"provider"`
	Class    string `toml:"class"`
}

// DiagramConfig holds the canvas size of the radial diagram.
type DiagramConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Path:   filepath.Join(DefaultDir(), "cache.db"),
			Expiry: "24h",
		},
		View: ViewConfig{
			Provider: string(catalog.GroupAll),
			Class:    string(catalog.ClassAll),
		},
		Diagram: DiagramConfig{
			Width:  1400,
			Height: 1200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDir returns ~/.config/pricemap, or a relative .pricemap directory
// when the home directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pricemap"
	}
	return filepath.Join(home, ".config", "pricemap")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Load reads the config file at path on top of DefaultConfig. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks enumerated fields and numeric ranges.
func (c *Config) Validate() error {
	if !catalog.ProviderGroup(c.View.Provider).Valid() {
		return fmt.Errorf("unknown view.provider %q", c.View.Provider)
	}
	if !catalog.ModelClass(c.View.Class).Valid() {
		return fmt.Errorf("unknown view.class %q", c.View.Class)
	}
	if c.Diagram.Width <= 0 || c.Diagram.Height <= 0 {
		return fmt.Errorf("diagram size must be positive, got %gx%g", c.Diagram.Width, c.Diagram.Height)
	}
	if _, err := c.Cache.ExpiryDuration(); err != nil {
		return err
	}
	return nil
}

// ExpiryDuration parses Expiry. An empty value means 24h.
func (c CacheConfig) ExpiryDuration() (time.Duration, error) {
	if c.Expiry == "" {
		return 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(c.Expiry)
	if err != nil {
		return 0, fmt.Errorf("invalid cache.expiry %q: %w", c.Expiry, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("cache.expiry must be positive, got %s", c.Expiry)
	}
	return d, nil
}

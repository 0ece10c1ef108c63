package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/termim/qsquaremap/pkg/squaremap"
)

// Config is the TOML file format. Zero values mean "use the default", so a
// partial file only overrides what it mentions.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Scanner ScannerConfig `toml:"scanner"`
}

// LayoutConfig controls the square-map layout.
type LayoutConfig struct {
	Padding     *float64 `toml:"padding"`
	Margin      *float64 `toml:"margin"`
	Labels      *bool    `toml:"labels"`
	Highlight   *bool    `toml:"highlight"`
	SquareStyle *bool    `toml:"square_style"`
	MaxDepth    *int     `toml:"max_depth"`
}

// ScannerConfig controls the filesystem walker.
type ScannerConfig struct {
	Workers *int  `toml:"workers"`
	Cache   *bool `toml:"cache"`
}

const defaultWorkers = 8

// defaultConfigPath returns the config file location, following XDG.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// loadConfig reads the config at path, or the default location when path is
// empty. A missing default file yields a zero Config; a missing explicit
// file is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// options builds layout options from the defaults plus config overrides.
func (cfg Config) options(base squaremap.Options) squaremap.Options {
	if cfg.Layout.Padding != nil {
		base.Padding = *cfg.Layout.Padding
	}
	if cfg.Layout.Margin != nil {
		base.Margin = *cfg.Layout.Margin
	}
	if cfg.Layout.Labels != nil {
		base.Labels = *cfg.Layout.Labels
	}
	if cfg.Layout.Highlight != nil {
		base.Highlight = *cfg.Layout.Highlight
	}
	if cfg.Layout.SquareStyle != nil {
		base.SquareStyle = *cfg.Layout.SquareStyle
	}
	if cfg.Layout.MaxDepth != nil {
		base.MaxDepth = *cfg.Layout.MaxDepth
	}
	return base
}

// workers returns the configured walker parallelism.
func (cfg Config) workers() int {
	if cfg.Scanner.Workers != nil && *cfg.Scanner.Workers > 0 {
		return *cfg.Scanner.Workers
	}
	return defaultWorkers
}

// cacheEnabled reports whether scan caching is on. It defaults to on.
func (cfg Config) cacheEnabled() bool {
	if cfg.Scanner.Cache != nil {
		return *cfg.Scanner.Cache
	}
	return true
}

// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig defines the global lsg configuration options. Flags
// override it field by field after loading.
type AppConfig struct {
	Theme      string            `yaml:"theme"`       // theme name: see internal/theme AvailableThemes
	Icons      string            `yaml:"icons"`       // icon theme: "nerd", "unicode" or "none"
	Git        bool              `yaml:"git"`         // show the git status column in long/tree output
	GitBackend string            `yaml:"git_backend"` // "cli", "native" or "" for automatic
	Layout     string            `yaml:"layout"`      // "grid", "oneline", "long" or "tree"
	All        bool              `yaml:"all"`         // include dotfiles
	Sort       string            `yaml:"sort"`        // "name", "size" or "time"
	Reverse    bool              `yaml:"reverse"`
	DateFormat string            `yaml:"date_format"` // Go time layout for the date column
	DebugLog   string            `yaml:"debug_log"`
	Colors     map[string]string `yaml:"colors"` // glob pattern -> color, wins over the theme
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:      "",
		Icons:      "nerd",
		Git:        true,
		GitBackend: "",
		Layout:     "grid",
		Sort:       "name",
		DateFormat: "Jan 02 15:04",
	}
}

// LoadConfig reads the configuration from an explicit path or from the
// default locations under the user config directory. A missing file is
// not an error; defaults apply.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	} else {
		base := filepath.Join(configDir(), "lsg")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- explicit config path chosen by the user
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

// Validate rejects values no component can act on, so a typo in the
// config file fails fast instead of silently falling back.
func (c *AppConfig) Validate() error {
	switch c.Layout {
	case "", "grid", "oneline", "long", "tree":
	default:
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	switch c.Sort {
	case "", "name", "size", "time":
	default:
		return fmt.Errorf("unknown sort key %q", c.Sort)
	}
	switch c.Icons {
	case "", "nerd", "unicode", "none":
	default:
		return fmt.Errorf("unknown icon theme %q", c.Icons)
	}
	switch c.GitBackend {
	case "", "cli", "native":
	default:
		return fmt.Errorf("unknown git backend %q", c.GitBackend)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func configDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Package config persists the calculator's single durable preference,
// the colour theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Theme names as stored on disk.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the on-disk preference file.
type Config struct {
	Theme string `yaml:"theme"`
}

// Path returns the config file location under the user's config
// directory, e.g. ~/.config/scalemate/config.yml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "scalemate", "config.yml"), nil
}

// Load reads the saved preference. It never fails: a missing,
// unreadable or invalid file falls back to terminal background
// detection, then light.
func Load() Config {
	if p, err := Path(); err == nil {
		if data, err := os.ReadFile(p); err == nil {
			var cfg Config
			if yaml.Unmarshal(data, &cfg) == nil && ValidTheme(cfg.Theme) {
				return cfg
			}
		}
	}
	return Config{Theme: DetectTheme()}
}

// Save writes the preference, creating the directory on first use.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DetectTheme probes the terminal background when stdout is a TTY and
// defaults to light otherwise.
func DetectTheme() string {
	if term.IsTerminal(int(os.Stdout.Fd())) && lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeDark || name == ThemeLight
}

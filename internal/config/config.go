// Package config loads the user configuration: keybindings, colors,
// and behavior settings, each in its own TOML file under the user
// config directory, plus the persisted preview split ratio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDirName = "ils"

// Config bundles everything read at startup.
type Config struct {
	Keys     Keybindings
	Colors   Colors
	Settings Settings

	// Warnings collects non-fatal problems found while loading, for
	// display after the UI is up. A broken file never aborts startup;
	// its section falls back to defaults.
	Warnings []string
}

// Dir returns the configuration directory, honoring ILS_CONFIG_DIR
// for tests and unusual setups.
func Dir() (string, error) {
	if override := os.Getenv("ILS_CONFIG_DIR"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// Load reads all configuration files. Missing files are normal and
// yield defaults silently; malformed files yield defaults plus a
// warning naming the file.
func Load() Config {
	cfg := Config{
		Keys:     DefaultKeybindings(),
		Colors:   DefaultColors(),
		Settings: DefaultSettings(),
	}

	dir, err := Dir()
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config dir unavailable: %v", err))
		return cfg
	}

	loadSection(filepath.Join(dir, "keybindings.toml"), &cfg.Keys, &cfg.Warnings)
	loadSection(filepath.Join(dir, "colors.toml"), &cfg.Colors, &cfg.Warnings)
	loadSection(filepath.Join(dir, "settings.toml"), &cfg.Settings, &cfg.Warnings)
	cfg.Settings = cfg.Settings.Normalize()
	return cfg
}

func loadSection(path string, dest any, warnings *[]string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := toml.DecodeFile(path, dest); err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s: %v (using defaults)", filepath.Base(path), err))
	}
}

const (
	// DefaultSplitRatio is the preview pane's share of the screen when
	// no ratio has been persisted.
	DefaultSplitRatio = 0.5

	minSplitRatio = 0.2
	maxSplitRatio = 1.0
)

// ClampSplitRatio bounds a preview split ratio to its legal range.
func ClampSplitRatio(r float64) float64 {
	if r < minSplitRatio {
		return minSplitRatio
	}
	if r > maxSplitRatio {
		return maxSplitRatio
	}
	return r
}

// LoadSplitRatio reads the persisted preview split ratio, falling back
// to the default when the file is absent or unreadable.
func LoadSplitRatio() float64 {
	dir, err := Dir()
	if err != nil {
		return DefaultSplitRatio
	}
	data, err := os.ReadFile(filepath.Join(dir, "preview_split"))
	if err != nil {
		return DefaultSplitRatio
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return DefaultSplitRatio
	}
	return ClampSplitRatio(r)
}

// SaveSplitRatio persists the preview split ratio for the next run.
func SaveSplitRatio(r float64) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	value := strconv.FormatFloat(ClampSplitRatio(r), 'f', 3, 64)
	return os.WriteFile(filepath.Join(dir, "preview_split"), []byte(value+"\n"), 0o644)
}

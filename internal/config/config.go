// Package config resolves the powerful configuration directory and the
// optional config.toml inside it. The CLI loads this once and injects
// plain values into the evaluator, which never touches the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable. Defaults reproduce the original contract:
// battery must be at 100%, lists read from the config dir, no journal.
type Config struct {
	Wifi    WifiConfig    `toml:"wifi"`
	Check   CheckConfig   `toml:"check"`
	Lists   ListsConfig   `toml:"lists"`
	Journal JournalConfig `toml:"journal"`
}

// WifiConfig selects the wireless interface to query.
type WifiConfig struct {
	Interface string `toml:"interface"`
}

// CheckConfig tunes the verdict thresholds.
type CheckConfig struct {
	// MinBatteryPercent is the charge required to count as "full".
	// Stays at 100 unless the machine caps charging below that.
	MinBatteryPercent int `toml:"min_battery_percent"`
}

// ListsConfig points at the accept/reject list files.
type ListsConfig struct {
	Accept string `toml:"accept"`
	Reject string `toml:"reject"`
}

// JournalConfig controls the optional run-history database. Disabled by
// default so a plain run writes nothing.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the configuration used when no config.toml exists.
func Default() Config {
	home := Home()
	return Config{
		Wifi: WifiConfig{
			Interface: "en0",
		},
		Check: CheckConfig{
			MinBatteryPercent: 100,
		},
		Lists: ListsConfig{
			Accept: filepath.Join(home, "accept-list.txt"),
			Reject: filepath.Join(home, "reject-list.txt"),
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    filepath.Join(home, "history.db"),
		},
	}
}

// Load reads <Home>/config.toml, falling back to defaults when the file
// is absent. A file that exists but does not parse is an error — unlike
// the list files, a broken config is worth stopping for.
func Load() (Config, error) {
	cfg := Default()
	path := filepath.Join(Home(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Check.MinBatteryPercent <= 0 || cfg.Check.MinBatteryPercent > 100 {
		return cfg, fmt.Errorf("min_battery_percent %d out of range 1-100", cfg.Check.MinBatteryPercent)
	}

	return cfg, nil
}

// Home returns the powerful configuration directory.
func Home() string {
	if env := os.Getenv("POWERFUL_HOME"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".powerful")
	}
	return filepath.Join(dir, "powerful")
}

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/xolan/timelog/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "timelog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// LogPath overrides the default timelog.txt location when set
	LogPath string `toml:"log_path"`
	// Editor overrides $EDITOR for the :e command
	Editor string `toml:"editor"`
	// DefaultMode selects the report shown on startup: "day" or "week"
	DefaultMode string `toml:"default_mode"`
	// Theme names the TUI color theme (a bubbletint tint ID)
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultMode: "day",
		Theme:       "dracula",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path, falling back to defaults when
// the file does not exist. Unknown keys are ignored; a malformed file is an
// error rather than a silent reset.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

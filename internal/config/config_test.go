package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultMode != "day" {
		t.Errorf("DefaultMode = %q, expected %q", cfg.DefaultMode, "day")
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, expected %q", cfg.Theme, "dracula")
	}
	if cfg.LogPath != "" || cfg.Editor != "" {
		t.Errorf("LogPath/Editor = %q/%q, expected empty", cfg.LogPath, cfg.Editor)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `log_path = "/tmp/my-timelog.txt"
editor = "nano"
default_mode = "week"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg.LogPath != "/tmp/my-timelog.txt" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.Editor != "nano" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
	if cfg.DefaultMode != "week" {
		t.Errorf("DefaultMode = %q", cfg.DefaultMode)
	}
	// unset keys keep their defaults
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, expected default %q", cfg.Theme, "dracula")
	}
}

func TestLoadOrDefaultMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_path = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("LoadOrDefault() succeeded on malformed file, expected error")
	}
}

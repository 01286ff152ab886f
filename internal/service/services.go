// Package service wires storage paths, configuration and the wall clock to
// the timelog store for the CLI and TUI front ends.
package service

import (
	"os"

	"github.com/xolan/timelog/internal/config"
	"github.com/xolan/timelog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Log    *LogService
	Config config.Config
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath, err = storage.DefaultLogPath()
		if err != nil {
			return nil, err
		}
	}

	return NewServicesWithPaths(logPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with a custom log path
// (useful for testing)
func NewServicesWithPaths(logPath string, cfg config.Config) *Services {
	return &Services{
		Log:    NewLogService(logPath, cfg),
		Config: cfg,
	}
}

// Editor returns the command used to edit the log file: the configured
// editor, else $EDITOR, else vi.
func (s *Services) Editor() string {
	if s.Config.Editor != "" {
		return s.Config.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

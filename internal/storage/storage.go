// Package storage owns the on-disk form of the timelog: default path
// resolution and whole-file read/write.
package storage

import (
	"os"
	"path/filepath"

	"github.com/xolan/timelog/internal/osutil"
)

const (
	// AppName is the application directory name used under the data dir.
	AppName = "gtimelog"
	// LogFile is the name of the plain-text log file.
	LogFile = "timelog.txt"
	// legacyDirName is the pre-XDG dotdir, honored when it already exists.
	legacyDirName = ".gtimelog"
)

// DefaultLogPath resolves the log file location. An existing legacy
// ~/.gtimelog directory wins; otherwise the file lives under $XDG_DATA_HOME
// (or ~/.local/share) in the application directory.
func DefaultLogPath() (string, error) {
	home, err := osutil.Provider.UserHomeDir()
	if err != nil {
		return "", err
	}

	legacyDir := filepath.Join(home, legacyDirName)
	if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
		return filepath.Join(legacyDir, LogFile), nil
	}

	dataDir := osutil.Provider.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, AppName, LogFile), nil
}

// ReadLog returns the full contents of the log file.
// A missing file is not an error: first use starts with an empty log.
func ReadLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// WriteLogAtomic rewrites the log file with the rendered text, creating
// parent directories as needed. Writes to a temp file and renames it into
// place, so a failed write never truncates the existing log.
func WriteLogAtomic(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, []byte(text), 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, path)
}

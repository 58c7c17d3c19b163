// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global cubetimer directory.
	GlobalDirName = ".cubetimer"

	// DataDirName is the directory holding file-backed slots.
	DataDirName = "data"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	DatabaseFileName = "cubetimer.db"
	LogFileName      = "cubetimer.log"
)

// homeOverride replaces the user's home directory in tests.
var homeOverride string

// GlobalDir returns the path to the global directory (~/.cubetimer/).
func GlobalDir() (string, error) {
	home := homeOverride
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return globalPath(SettingsFileName)
}

// GlobalDataDir returns the directory used by the file slot backend.
func GlobalDataDir() (string, error) {
	return globalPath(DataDirName)
}

// GlobalDatabaseFile returns the path to the SQLite slot database.
func GlobalDatabaseFile() (string, error) {
	return globalPath(DatabaseFileName)
}

// GlobalLogFile returns the path to the TUI log file.
func GlobalLogFile() (string, error) {
	return globalPath(LogFileName)
}

func globalPath(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureGlobalDir creates the global directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

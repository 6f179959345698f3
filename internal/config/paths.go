// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory under $HOME holding the configuration file.
	ConfigDirName = ".config"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "undeadlemon.toml"
)

// ConfigDir returns the path to the configuration directory (~/.config/).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigDirName), nil
}

// DefaultPath returns the path to ~/.config/undeadlemon.toml.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// ResolvePath returns path if set, otherwise the default path.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultPath()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

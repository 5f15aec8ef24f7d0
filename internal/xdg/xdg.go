// Package xdg resolves XDG Base Directory paths for dadbod-seed.
// It falls back to the traditional ~/.config location when XDG_CONFIG_HOME
// is not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "dadbod-seed"

// ConfigDir returns the XDG config directory for dadbod-seed without
// creating it. It falls back to ~/.config/dadbod-seed when XDG_CONFIG_HOME
// is unset, and fails only when no home directory is known either.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

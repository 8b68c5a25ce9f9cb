// Package config resolves which configuration file scalpel edits.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the file edited inside the install directory.
	ConfigFileName = "config.yaml"

	// DefaultInstallDirName is the install directory under the user's home
	// when neither a flag nor INSTALL_DIR names one.
	DefaultInstallDirName = "SillyTavern"
)

// ResolvePaths determines the install directory and config file.
// Resolution order: dir (from --path), INSTALL_DIR, $HOME/SillyTavern.
// The config file is not required to exist; callers report that when
// they read it.
func ResolvePaths(dir string) (Paths, error) {
	if dir == "" {
		dir = os.Getenv(EnvInstallDir)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("cannot determine home directory (set %s or pass --path): %w", EnvInstallDir, err)
		}
		dir = filepath.Join(home, DefaultInstallDirName)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving install directory %s: %w", dir, err)
	}

	return Paths{
		InstallDir: abs,
		ConfigFile: filepath.Join(abs, ConfigFileName),
	}, nil
}

// Package paths resolves the configuration directory and the recipe book
// location for the alchemist CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config root.
const appDirName = "alchemy"

// Environment variable names for overrides.
const (
	EnvConfigDir  = "ALCHEMY_CONFIG_DIR"
	EnvRecipeFile = "ALCHEMY_RECIPES"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/alchemy (fallback ~/.config/alchemy)
// macOS:   ~/Library/Application Support/alchemy
// Windows: %APPDATA%/alchemy
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ALCHEMY_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRecipeFile returns the recipe book path following the precedence
// chain: flag > config.yaml value > ALCHEMY_RECIPES env. A relative config
// value is taken relative to configDir; relative flag and env values are
// taken relative to the working directory. Returns "" when nothing is set,
// meaning the built-in book is used.
func ResolveRecipeFile(flag, configValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		if filepath.IsAbs(configValue) {
			return configValue, nil
		}
		return filepath.Join(configDir, configValue), nil
	}
	if env := os.Getenv(EnvRecipeFile); env != "" {
		return filepath.Abs(env)
	}
	return "", nil
}

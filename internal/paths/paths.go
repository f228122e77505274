// Package paths resolves the configuration directory and the seed file
// location for the masthead CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config root.
const appDirName = "masthead"

// ConfigFileName is the config file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for overrides.
const (
	EnvConfigDir = "MASTHEAD_CONFIG_DIR"
	EnvSeedFile  = "MASTHEAD_SEED"
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
// Linux:   $XDG_CONFIG_HOME/masthead (fallback ~/.config/masthead)
// macOS:   ~/Library/Application Support/masthead
// Windows: %APPDATA%/masthead
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
// chain: flag > MASTHEAD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveSeedFile returns the seed file path following the precedence chain:
// flag > configYAMLValue > MASTHEAD_SEED env > "" (built-in seed).
//
// A relative flag or env value is resolved against the working directory; a
// relative config.yaml value is resolved against configDir.
func ResolveSeedFile(flag, configYAMLValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		if filepath.IsAbs(configYAMLValue) {
			return configYAMLValue, nil
		}
		return filepath.Join(configDir, configYAMLValue), nil
	}
	if env := os.Getenv(EnvSeedFile); env != "" {
		return filepath.Abs(env)
	}
	return "", nil
}

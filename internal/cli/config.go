// Config loading for the masthead CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/masthead/internal/paths"
	"github.com/mesh-intelligence/masthead/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// envPrefix scopes environment overrides, e.g. MASTHEAD_OUTPUT=json.
	envPrefix = "MASTHEAD"

	// Config keys.
	cfgKeySeedFile = "seed_file"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir using Viper, applies
// MASTHEAD_* environment overrides and the --log-level flag, then
// validates the result. A missing config.yaml is not an error.
func loadConfig(configDir string, cmd *cobra.Command) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeySeedFile, "")
	v.SetDefault(cfgKeyOutput, types.OutputText)
	v.SetDefault(cfgKeyLogLevel, types.LogLevelWarn)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("log-level"); f != nil {
		if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
			return types.Config{}, fmt.Errorf("bind log-level flag: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		SeedFile: v.GetString(cfgKeySeedFile),
		Output:   v.GetString(cfgKeyOutput),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with cfg if the file does not
// exist. Returns true when a file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}

func configPath(configDir string) string {
	return filepath.Join(configDir, paths.ConfigFileName)
}

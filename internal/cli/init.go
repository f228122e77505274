package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/masthead/internal/catalog"
	"github.com/mesh-intelligence/masthead/pkg/types"
)

// sampleSeedName is the seed written by init --sample-seed.
const sampleSeedName = "seed.yaml"

func newInitCmd(a *app) *cobra.Command {
	var sampleSeed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and config.yaml",
		Long: "Create the configuration directory and a default config.yaml. With\n" +
			"--sample-seed, also write the demonstration graph as seed.yaml and point\n" +
			"config.yaml at it. Existing files are left untouched.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			cfg := types.Config{Output: types.OutputText, LogLevel: types.LogLevelWarn}
			if sampleSeed {
				seedPath := filepath.Join(a.configDir, sampleSeedName)
				written, err := writeSeedIfMissing(seedPath, catalog.DemoSeed())
				if err != nil {
					return fmt.Errorf("write sample seed: %w", err)
				}
				if written {
					fmt.Fprintln(cmd.OutOrStdout(), "Wrote", seedPath)
				}
				cfg.SeedFile = sampleSeedName
			}

			path := configPath(a.configDir)
			written, err := writeConfigIfMissing(path, cfg)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists:", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sampleSeed, "sample-seed", false, "also write the demonstration seed")
	return cmd
}

func writeSeedIfMissing(path string, seed catalog.Seed) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(&seed)
	if err != nil {
		return false, fmt.Errorf("marshal seed: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notemark/internal/config"
)

// loadConfig resolves the effective configuration: an explicit --config
// path wins, otherwise the nearest notemark.toml upward from the
// working directory, otherwise the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	} else if wd, wdErr := os.Getwd(); wdErr == nil {
		cfg, err = config.Discover(wd)
		if err != nil {
			return config.Config{}, err
		}
	}

	// The flag outranks the config file.
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiags > 0 {
		cfg.Check.MaxDiagnostics = maxDiags
	}
	return cfg, nil
}

// useColor resolves the --color tri-state against the terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}

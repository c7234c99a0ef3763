package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/observer/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "observer",
	Short:        "Typed in-process event coordinator",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration file, or returns the defaults when no
// file was given, and applies its logging section.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if err := cfg.Logging.Apply(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return cfg, nil
}

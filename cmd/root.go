package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kava-labs/collateral-monitor/config"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:          "collateral-monitor",
		Short:        "collateralization ratio monitor for a CosmWasm lending market",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional config file, environment variables take precedence")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(encodeQueryCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config and returns a logger at the configured level
func loadConfig() (config.Config, zerolog.Logger, error) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var loader config.ConfigLoader = &config.EnvLoader{}
	if configPath != "" {
		viperLoader, err := config.NewViperLoader(configPath)
		if err != nil {
			return config.Config{}, logger, fmt.Errorf("failed to read config file: %w", err)
		}
		loader = viperLoader
	}

	cfg, err := config.LoadConfig(loader, logger)
	if err != nil {
		return config.Config{}, logger, err
	}

	return cfg, logger.Level(cfg.LogLevel), nil
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kava-labs/collateral-monitor/health"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "monitors the collateralization ratio of an account until interrupted",
	Example: "run --config config.yaml",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Info().
			Str("transport", string(cfg.Transport)).
			Str("endpoint", cfg.Endpoint).
			Str("contract", cfg.ContractAddress).
			Str("account", cfg.AccountAddress).
			Dur("interval", cfg.Interval).
			Str("price_source", string(cfg.PriceSource)).
			Msg("config loaded")

		app, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer app.close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.HealthCheckListenAddr != "" {
			handler := health.NewHandler(logger, app.status, app.monitor.Interval(), app.registry)
			health.StartHealthCheckService(ctx, logger, cfg.HealthCheckListenAddr, handler)
		}

		app.monitor.Run(ctx)
		return nil
	},
}

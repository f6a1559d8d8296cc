package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "computes the collateralization ratio once and exits, non-zero on failure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer app.close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err := app.monitor.RunOnce(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Debts: %s\n", report.Positions.Debts)
		fmt.Fprintf(out, "Collaterals: %s\n", report.Positions.Collaterals)
		fmt.Fprintf(out, "Collateralization ratio: %s\n", report.Ratio)
		return nil
	},
}

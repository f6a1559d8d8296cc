package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kava-labs/collateral-monitor/monitor"
)

// StaleIntervals is the number of intervals without a successful cycle after
// which the service reports down
const StaleIntervals = 3

// StatusSource provides the latest monitor status
type StatusSource interface {
	Status() monitor.Status
}

// NewHandler returns a router serving /health and /metrics
func NewHandler(
	logger zerolog.Logger,
	source StatusSource,
	interval time.Duration,
	gatherer prometheus.Gatherer,
) http.Handler {
	startedAt := time.Now()

	checker := health.NewChecker(
		health.WithCacheDuration(1*time.Second),
		health.WithTimeout(10*time.Second),
		health.WithCheck(health.Check{
			Name: "collateralization cycle",
			Check: func(ctx context.Context) error {
				err := CheckStatus(source.Status(), startedAt, time.Now(), interval)
				logger.Debug().Err(err).Msg("collateralization cycle health check")
				return err
			},
		}),
		// Runs when health status changes
		health.WithStatusListener(func(ctx context.Context, state health.CheckerState) {
			logger.
				Debug().
				Interface("state", state).
				Msg("health status changed")
		}),
	)

	r := chi.NewRouter()
	r.Get("/health", health.NewHandler(checker))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// CheckStatus returns an error when the last cycle failed or when no cycle has
// succeeded within StaleIntervals intervals of now
func CheckStatus(status monitor.Status, startedAt, now time.Time, interval time.Duration) error {
	if status.LastError != nil {
		return fmt.Errorf("last cycle failed: %w", status.LastError)
	}

	deadline := StaleIntervals * interval
	if status.LastSuccess.IsZero() {
		if now.Sub(startedAt) > deadline {
			return fmt.Errorf("no cycle completed since start %s ago", now.Sub(startedAt).Truncate(time.Second))
		}
		return nil
	}

	if since := now.Sub(status.LastSuccess); since > deadline {
		return fmt.Errorf("last successful cycle %s ago", since.Truncate(time.Second))
	}

	return nil
}

// StartHealthCheckService serves handler on addr until ctx is done
func StartHealthCheckService(
	ctx context.Context,
	logger zerolog.Logger,
	addr string,
	handler http.Handler,
) {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.
			Info().
			Msgf("healthcheck server listening on %s", server.Addr)

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start healthcheck server")
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to stop healthcheck server")
		}
	}()
}

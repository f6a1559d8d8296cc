package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kava-labs/collateral-monitor/query"
	"github.com/kava-labs/collateral-monitor/valuation"
)

// Report is the outcome of one successful monitoring cycle
type Report struct {
	Account   string
	Positions query.UserPositions
	valuation.Result
	Time time.Time
}

// Monitor computes the collateralization ratio of one account on a fixed
// interval
type Monitor struct {
	fetcher   query.PositionFetcher
	valuation valuation.Context
	account   string
	interval  time.Duration
	reporter  Reporter
	logger    zerolog.Logger
	now       func() time.Time
}

// NewMonitor returns a monitor for account. A nil reporter discards reports.
func NewMonitor(
	fetcher query.PositionFetcher,
	valuationCtx valuation.Context,
	account string,
	interval time.Duration,
	reporter Reporter,
	logger zerolog.Logger,
) *Monitor {
	if reporter == nil {
		reporter = MultiReporter{}
	}

	return &Monitor{
		fetcher:   fetcher,
		valuation: valuationCtx,
		account:   account,
		interval:  interval,
		reporter:  reporter,
		logger:    logger,
		now:       time.Now,
	}
}

// Interval is the time between the start of two cycles
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// RunOnce fetches debts and collaterals, values them and reports the ratio.
// Any error aborts the cycle and is passed to the reporter before returning.
func (m *Monitor) RunOnce(ctx context.Context) (Report, error) {
	report, err := m.cycle(ctx)
	if err != nil {
		m.reporter.ReportFailure(m.account, err)
		return Report{}, err
	}

	m.reporter.ReportSuccess(report)
	return report, nil
}

func (m *Monitor) cycle(ctx context.Context) (Report, error) {
	positions, err := query.FetchUserPositions(ctx, m.fetcher, m.account)
	if err != nil {
		return Report{}, fmt.Errorf("failed to fetch positions: %w", err)
	}

	m.logger.Debug().
		Str("account", m.account).
		Stringer("debts", positions.Debts).
		Stringer("collaterals", positions.Collaterals).
		Msg("fetched positions")

	result, err := valuation.CollateralizationRatio(positions.Debts, positions.Collaterals, m.valuation)
	if err != nil {
		return Report{}, fmt.Errorf("failed to calculate the collateralization ratio: %w", err)
	}

	return Report{
		Account:   m.account,
		Positions: positions,
		Result:    result,
		Time:      m.now(),
	}, nil
}

// Run runs a cycle immediately and then once per interval until ctx is done.
// Cycles never overlap and a failed cycle does not stop the loop.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info().
		Str("account", m.account).
		Dur("interval", m.interval).
		Msg("starting collateralization monitor")

	for {
		// errors have already been reported
		_, _ = m.RunOnce(ctx)

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			m.logger.Info().Msg("stopping collateralization monitor")
			return
		}
	}
}

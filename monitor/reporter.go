package monitor

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Reporter receives the outcome of every monitoring cycle
type Reporter interface {
	ReportSuccess(report Report)
	ReportFailure(account string, err error)
}

// MultiReporter fans out to every reporter in order
type MultiReporter []Reporter

var _ Reporter = MultiReporter{}

func (r MultiReporter) ReportSuccess(report Report) {
	for _, reporter := range r {
		reporter.ReportSuccess(report)
	}
}

func (r MultiReporter) ReportFailure(account string, err error) {
	for _, reporter := range r {
		reporter.ReportFailure(account, err)
	}
}

// LogReporter writes cycle outcomes to a zerolog logger
type LogReporter struct {
	logger zerolog.Logger
}

var _ Reporter = LogReporter{}

func NewLogReporter(logger zerolog.Logger) LogReporter {
	return LogReporter{logger: logger}
}

func (r LogReporter) ReportSuccess(report Report) {
	r.logger.Info().
		Str("account", report.Account).
		Stringer("debts", report.Positions.Debts).
		Stringer("collaterals", report.Positions.Collaterals).
		Stringer("total_debt", report.TotalDebt).
		Stringer("total_collateral", report.TotalCollateral).
		Str("ratio_exact", report.Ratio.RatString()).
		Msgf("Collateralization ratio: %s", report.Ratio)
}

func (r LogReporter) ReportFailure(account string, err error) {
	r.logger.Error().
		Err(err).
		Str("account", account).
		Msg("collateralization cycle failed")
}

// Status is a snapshot of the most recent cycles
type Status struct {
	LastAttempt time.Time
	LastSuccess time.Time
	// LastError is nil when the most recent cycle succeeded
	LastError  error
	LastReport *Report
}

// StatusReporter keeps the latest Status for readers on other goroutines
type StatusReporter struct {
	status atomic.Value
	now    func() time.Time
}

var _ Reporter = (*StatusReporter)(nil)

func NewStatusReporter() *StatusReporter {
	r := &StatusReporter{now: time.Now}
	r.status.Store(Status{})
	return r
}

// Status returns the latest snapshot. It is safe for concurrent use.
func (r *StatusReporter) Status() Status {
	return r.status.Load().(Status)
}

// ReportSuccess must only be called from the monitor goroutine
func (r *StatusReporter) ReportSuccess(report Report) {
	now := r.now()
	r.status.Store(Status{
		LastAttempt: now,
		LastSuccess: now,
		LastReport:  &report,
	})
}

// ReportFailure must only be called from the monitor goroutine
func (r *StatusReporter) ReportFailure(account string, err error) {
	previous := r.Status()
	r.status.Store(Status{
		LastAttempt: r.now(),
		LastSuccess: previous.LastSuccess,
		LastError:   err,
		LastReport:  previous.LastReport,
	})
}

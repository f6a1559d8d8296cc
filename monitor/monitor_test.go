package monitor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kava-labs/collateral-monitor/mock"
	"github.com/kava-labs/collateral-monitor/monitor"
	"github.com/kava-labs/collateral-monitor/oracle"
	"github.com/kava-labs/collateral-monitor/query"
	"github.com/kava-labs/collateral-monitor/types"
	"github.com/kava-labs/collateral-monitor/valuation"
)

const account = "osmo1p2lnskywgtmdszw4lyka8wu3mn925365djuc24"

type recordingReporter struct {
	successes []monitor.Report
	failures  []error
}

func (r *recordingReporter) ReportSuccess(report monitor.Report) {
	r.successes = append(r.successes, report)
}

func (r *recordingReporter) ReportFailure(_ string, err error) {
	r.failures = append(r.failures, err)
}

func ta(denom string, amount uint64) types.TokenAmount {
	return types.MustNewTokenAmount(denom, types.NewUint128(amount))
}

var (
	testDebts       = types.PositionSet{ta("uusdc", 1_000_000), ta("uosmo", 1_000_000)}
	testCollaterals = types.PositionSet{ta("uatom", 4_000_000)}
)

func TestRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mock.NewMockPositionFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserDebts).Return(testDebts, nil),
		fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserCollaterals).Return(testCollaterals, nil),
	)

	reporter := &recordingReporter{}
	m := monitor.NewMonitor(fetcher, valuation.NewContext(), account, time.Second, reporter, zerolog.Nop())

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, account, report.Account)
	assert.Equal(t, testDebts, report.Positions.Debts)
	assert.Equal(t, testCollaterals, report.Positions.Collaterals)
	assert.Equal(t, "2000000000000", report.TotalDebt.String())
	assert.Equal(t, "4000000000000", report.TotalCollateral.String())
	assert.Equal(t, "2/1", report.Ratio.RatString())
	assert.Equal(t, "2.000000000000000000", report.Ratio.String())
	assert.False(t, report.Time.IsZero())

	require.Len(t, reporter.successes, 1)
	assert.Empty(t, reporter.failures)
	assert.Equal(t, report, reporter.successes[0])
}

func TestRunOnceNoDebt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mock.NewMockPositionFetcher(ctrl)
	fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserDebts).Return(types.PositionSet{}, nil)
	fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserCollaterals).Return(testCollaterals, nil)

	m := monitor.NewMonitor(fetcher, valuation.NewContext(), account, time.Second, nil, zerolog.Nop())

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Ratio.IsZero())
	assert.Equal(t, "0/1", report.Ratio.RatString())
}

func TestRunOnceFetchFailureAbortsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetchErr := query.NewTransportError(query.QueryUserDebts, errors.New("connection refused"))

	// collaterals are never requested once debts fail
	fetcher := mock.NewMockPositionFetcher(ctrl)
	fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserDebts).Return(nil, fetchErr)

	reporter := &recordingReporter{}
	m := monitor.NewMonitor(fetcher, valuation.NewContext(), account, time.Second, reporter, zerolog.Nop())

	_, err := m.RunOnce(context.Background())
	require.Error(t, err)

	var target *query.FetchError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, query.FetchErrorTransport, target.Kind)

	assert.Empty(t, reporter.successes)
	require.Len(t, reporter.failures, 1)
	assert.Equal(t, err, reporter.failures[0])
}

func TestRunOncePriceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mock.NewMockPositionFetcher(ctrl)
	fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserDebts).Return(testDebts, nil)
	fetcher.EXPECT().FetchPositions(gomock.Any(), account, query.QueryUserCollaterals).Return(testCollaterals, nil)

	priceOracle := mock.NewMockPriceOracle(ctrl)
	priceOracle.EXPECT().PriceOf("uatom").Return(types.MustNewDecimalRatio(10, 1), nil).AnyTimes()
	priceOracle.EXPECT().PriceOf("uusdc").Return(types.MustNewDecimalRatio(1, 1), nil).AnyTimes()
	priceOracle.EXPECT().PriceOf("uosmo").Return(types.DecimalRatio{}, oracle.NewPriceUnavailableError("uosmo"))

	valuationCtx := valuation.Context{
		Decimals: valuation.FixedDecimals(valuation.DefaultDecimals),
		Oracle:   priceOracle,
	}

	reporter := &recordingReporter{}
	m := monitor.NewMonitor(fetcher, valuationCtx, account, time.Second, reporter, zerolog.Nop())

	_, err := m.RunOnce(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oracle.ErrPriceUnavailable))

	var valuationErr *valuation.ValuationError
	require.True(t, errors.As(err, &valuationErr))
	assert.Equal(t, "uosmo", valuationErr.Denom)

	assert.Empty(t, reporter.successes)
	assert.Len(t, reporter.failures, 1)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := mock.NewMockPositionFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().
			FetchPositions(gomock.Any(), account, query.QueryUserDebts).
			Return(nil, query.NewRequestFailedError(query.QueryUserDebts, 500, errors.New("Internal Server Error"))),
		fetcher.EXPECT().
			FetchPositions(gomock.Any(), account, query.QueryUserDebts).
			Return(testDebts, nil),
		fetcher.EXPECT().
			FetchPositions(gomock.Any(), account, query.QueryUserCollaterals).
			DoAndReturn(func(context.Context, string, query.QueryKind) (types.PositionSet, error) {
				cancel()
				return testCollaterals, nil
			}),
	)

	reporter := &recordingReporter{}
	m := monitor.NewMonitor(fetcher, valuation.NewContext(), account, time.Millisecond, reporter, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}

	require.Len(t, reporter.failures, 1)
	require.Len(t, reporter.successes, 1)
	assert.Equal(t, "2/1", reporter.successes[0].Ratio.RatString())
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the first cycle runs immediately even with a done context
	fetcher := mock.NewMockPositionFetcher(ctrl)
	fetcher.EXPECT().
		FetchPositions(gomock.Any(), account, query.QueryUserDebts).
		Return(nil, query.NewTransportError(query.QueryUserDebts, context.Canceled))

	reporter := &recordingReporter{}
	m := monitor.NewMonitor(fetcher, valuation.NewContext(), account, time.Hour, reporter, zerolog.Nop())
	m.Run(ctx)

	assert.Len(t, reporter.failures, 1)
	assert.Equal(t, time.Hour, m.Interval())
}

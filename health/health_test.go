package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kava-labs/collateral-monitor/monitor"
)

type staticStatus monitor.Status

func (s staticStatus) Status() monitor.Status { return monitor.Status(s) }

func TestCheckStatus(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	interval := 10 * time.Second

	testCases := []struct {
		name   string
		status monitor.Status
		now    time.Time
		err    string
	}{
		{
			name: "starting up",
			now:  start.Add(5 * time.Second),
		},
		{
			name: "no cycle completed",
			now:  start.Add(31 * time.Second),
			err:  "no cycle completed since start 31s ago",
		},
		{
			name:   "recent success",
			status: monitor.Status{LastAttempt: start.Add(20 * time.Second), LastSuccess: start.Add(20 * time.Second)},
			now:    start.Add(45 * time.Second),
		},
		{
			name:   "stale success",
			status: monitor.Status{LastAttempt: start, LastSuccess: start},
			now:    start.Add(time.Minute),
			err:    "last successful cycle 1m0s ago",
		},
		{
			name: "last cycle failed",
			status: monitor.Status{
				LastAttempt: start.Add(10 * time.Second),
				LastSuccess: start,
				LastError:   errors.New("request failed"),
			},
			now: start.Add(11 * time.Second),
			err: "last cycle failed: request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckStatus(tc.status, start, tc.now, interval)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.err, err.Error())
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()

	up := NewHandler(zerolog.Nop(), staticStatus{LastSuccess: time.Now()}, time.Minute, reg)
	rec := httptest.NewRecorder()
	up.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"up"`)

	down := NewHandler(zerolog.Nop(), staticStatus{LastError: errors.New("request failed")}, time.Minute, reg)
	rec = httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"down"`)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	reporter := monitor.NewMetricsReporter(reg)
	reporter.ReportFailure("osmo1p2lnskywgtmdszw4lyka8wu3mn925365djuc24", errors.New("request failed"))

	handler := NewHandler(zerolog.Nop(), staticStatus{}, time.Minute, reg)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `collateral_monitor_cycles_total{account="osmo1p2lnskywgtmdszw4lyka8wu3mn925365djuc24",result="failure"} 1`)
}

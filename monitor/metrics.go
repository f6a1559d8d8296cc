package monitor

import (
	"math/big"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kava-labs/collateral-monitor/types"
)

const metricsNamespace = "collateral_monitor"

// MetricsReporter exports cycle outcomes as prometheus metrics
type MetricsReporter struct {
	ratio           *prometheus.GaugeVec
	totalDebt       *prometheus.GaugeVec
	totalCollateral *prometheus.GaugeVec
	positions       *prometheus.GaugeVec
	lastSuccess     *prometheus.GaugeVec
	cycles          *prometheus.CounterVec
}

var _ Reporter = (*MetricsReporter)(nil)

// NewMetricsReporter registers the monitor metrics with reg
func NewMetricsReporter(reg prometheus.Registerer) *MetricsReporter {
	factory := promauto.With(reg)

	return &MetricsReporter{
		ratio: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "collateralization_ratio",
			Help:      "Total collateral value over total debt value, zero when the account has no debt.",
		}, []string{"account"}),
		totalDebt: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "total_debt_value",
			Help:      "Summed value of all debt positions.",
		}, []string{"account"}),
		totalCollateral: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "total_collateral_value",
			Help:      "Summed value of all collateral positions.",
		}, []string{"account"}),
		positions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "positions",
			Help:      "Number of positions returned by the contract.",
		}, []string{"account", "kind"}),
		lastSuccess: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful cycle.",
		}, []string{"account"}),
		cycles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cycles_total",
			Help:      "Monitoring cycles by result.",
		}, []string{"account", "result"}),
	}
}

func (r *MetricsReporter) ReportSuccess(report Report) {
	ratio, err := strconv.ParseFloat(report.Ratio.String(), 64)
	if err == nil {
		r.ratio.WithLabelValues(report.Account).Set(ratio)
	}
	r.totalDebt.WithLabelValues(report.Account).Set(uint128Float(report.TotalDebt))
	r.totalCollateral.WithLabelValues(report.Account).Set(uint128Float(report.TotalCollateral))
	r.positions.WithLabelValues(report.Account, "debt").Set(float64(len(report.Positions.Debts)))
	r.positions.WithLabelValues(report.Account, "collateral").Set(float64(len(report.Positions.Collaterals)))
	r.lastSuccess.WithLabelValues(report.Account).Set(float64(report.Time.Unix()))
	r.cycles.WithLabelValues(report.Account, "success").Inc()
}

func (r *MetricsReporter) ReportFailure(account string, _ error) {
	r.cycles.WithLabelValues(account, "failure").Inc()
}

func uint128Float(u types.Uint128) float64 {
	f, _ := new(big.Float).SetInt(u.BigInt()).Float64()
	return f
}

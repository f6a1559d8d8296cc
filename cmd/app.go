package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	rpchttpclient "github.com/tendermint/tendermint/rpc/client/http"

	"github.com/kava-labs/collateral-monitor/config"
	kgrpc "github.com/kava-labs/collateral-monitor/grpc"
	"github.com/kava-labs/collateral-monitor/monitor"
	"github.com/kava-labs/collateral-monitor/oracle"
	"github.com/kava-labs/collateral-monitor/query"
	"github.com/kava-labs/collateral-monitor/valuation"
)

// app holds the components built from a Config
type app struct {
	monitor  *monitor.Monitor
	status   *monitor.StatusReporter
	registry *prometheus.Registry
	close    func() error
}

func newApp(cfg config.Config, logger zerolog.Logger) (*app, error) {
	valuationCtx, err := newValuationContext(cfg)
	if err != nil {
		return nil, err
	}

	fetcher, closeFetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	status := monitor.NewStatusReporter()
	reporter := monitor.MultiReporter{
		monitor.NewLogReporter(logger),
		monitor.NewMetricsReporter(registry),
		status,
	}

	return &app{
		monitor:  monitor.NewMonitor(fetcher, valuationCtx, cfg.AccountAddress, cfg.Interval, reporter, logger),
		status:   status,
		registry: registry,
		close:    closeFetcher,
	}, nil
}

// newFetcher returns the PositionFetcher for the configured transport and a
// func releasing its connection
func newFetcher(cfg config.Config, logger zerolog.Logger) (query.PositionFetcher, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Transport {
	case config.TransportRest:
		return query.NewRestClient(cfg.Endpoint, cfg.ContractAddress, logger), noop, nil
	case config.TransportRpc:
		rpcClient, err := rpchttpclient.New(cfg.Endpoint, "/websocket")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create rpc client: %w", err)
		}
		return query.NewRpcClient(rpcClient, cfg.ContractAddress, logger), noop, nil
	case config.TransportGrpc:
		conn, err := kgrpc.NewGrpcConnection(cfg.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		return query.NewGrpcClient(conn, cfg.ContractAddress, logger), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

// newValuationContext applies the token metadata file, if any, and the
// configured price source
func newValuationContext(cfg config.Config) (valuation.Context, error) {
	valuationCtx := valuation.Context{
		Decimals: valuation.FixedDecimals(cfg.DefaultDecimals),
		Oracle:   oracle.NewConstantOracle(),
	}

	if cfg.TokenMetadataPath == "" {
		return valuationCtx, nil
	}

	table, err := config.LoadTokenTable(cfg.TokenMetadataPath)
	if err != nil {
		return valuation.Context{}, fmt.Errorf("failed to load token metadata: %w", err)
	}

	valuationCtx.Decimals = valuation.TableDecimals(table.Decimals, cfg.DefaultDecimals)
	if cfg.PriceSource == config.PriceSourceTable {
		valuationCtx.Oracle = oracle.NewTableOracle(table.Prices)
	}

	return valuationCtx, nil
}

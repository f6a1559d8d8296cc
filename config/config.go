package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	queryTransportEnvKey        = "QUERY_TRANSPORT"
	restEndpointEnvKey          = "REST_ENDPOINT"
	rpcEndpointEnvKey           = "RPC_ENDPOINT"
	grpcEndpointEnvKey          = "GRPC_ENDPOINT"
	contractAddressEnvKey       = "CONTRACT_ADDRESS"
	accountAddressEnvKey        = "ACCOUNT_ADDRESS"
	intervalEnvKey              = "INTERVAL"
	defaultDecimalsEnvKey       = "DEFAULT_DECIMALS"
	tokenMetadataPathEnvKey     = "TOKEN_METADATA_PATH"
	priceSourceEnvKey           = "PRICE_SOURCE"
	healthCheckListenAddrEnvKey = "HEALTH_CHECK_LISTEN_ADDR"
	logLevelEnvKey              = "LOG_LEVEL"

	defaultInterval = 10 * time.Second
	defaultDecimals = 6
)

// Transport selects how smart queries reach the chain
type Transport string

const (
	TransportRest Transport = "rest"
	TransportRpc  Transport = "rpc"
	TransportGrpc Transport = "grpc"
)

// PriceSource selects the price oracle
type PriceSource string

const (
	// PriceSourceConstant prices everything at 1.0
	PriceSourceConstant PriceSource = "constant"
	// PriceSourceTable uses the prices of the token metadata file
	PriceSourceTable PriceSource = "table"
)

// ConfigLoader provides an interface for
// loading config values from a provided key
type ConfigLoader interface {
	Get(key string) string
}

// Config provides application configuration. It is built once at startup and
// passed to every component.
type Config struct {
	Transport             Transport
	Endpoint              string
	ContractAddress       string
	AccountAddress        string
	Interval              time.Duration
	DefaultDecimals       uint32
	TokenMetadataPath     string
	PriceSource           PriceSource
	HealthCheckListenAddr string
	LogLevel              zerolog.Level
}

// LoadConfig loads key values from a ConfigLoader
// and returns a new Config
func LoadConfig(loader ConfigLoader, logger zerolog.Logger) (Config, error) {
	// Ignore error from godotenv, continue if there isn't an .env file and
	// check if required env vars already exist
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env not found, attempting to proceed with available env variables")
	}

	transport := Transport(strings.ToLower(loader.Get(queryTransportEnvKey)))
	if transport == "" {
		transport = TransportRest
	}

	var endpointKey string
	switch transport {
	case TransportRest:
		endpointKey = restEndpointEnvKey
	case TransportRpc:
		endpointKey = rpcEndpointEnvKey
	case TransportGrpc:
		endpointKey = grpcEndpointEnvKey
	default:
		return Config{}, fmt.Errorf("%s must be one of rest, rpc, grpc, got %q", queryTransportEnvKey, transport)
	}

	endpoint := loader.Get(endpointKey)
	if endpoint == "" {
		return Config{}, fmt.Errorf("%s not set", endpointKey)
	}

	contractAddress := loader.Get(contractAddressEnvKey)
	if contractAddress == "" {
		return Config{}, fmt.Errorf("%s not set", contractAddressEnvKey)
	}
	if err := validateAddress(contractAddress); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", contractAddressEnvKey, err)
	}

	accountAddress := loader.Get(accountAddressEnvKey)
	if accountAddress == "" {
		return Config{}, fmt.Errorf("%s not set", accountAddressEnvKey)
	}
	if err := validateAddress(accountAddress); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", accountAddressEnvKey, err)
	}

	interval := defaultInterval
	if v := loader.Get(intervalEnvKey); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", intervalEnvKey, err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("%s must be positive", intervalEnvKey)
		}
		interval = parsed
	}

	decimals := uint32(defaultDecimals)
	if v := loader.Get(defaultDecimalsEnvKey); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", defaultDecimalsEnvKey, err)
		}
		decimals = uint32(parsed)
	}

	tokenMetadataPath := loader.Get(tokenMetadataPathEnvKey)

	priceSource := PriceSource(strings.ToLower(loader.Get(priceSourceEnvKey)))
	switch priceSource {
	case "":
		priceSource = PriceSourceConstant
	case PriceSourceConstant:
	case PriceSourceTable:
		if tokenMetadataPath == "" {
			return Config{}, fmt.Errorf("%s=%s requires %s", priceSourceEnvKey, PriceSourceTable, tokenMetadataPathEnvKey)
		}
	default:
		return Config{}, fmt.Errorf("%s must be one of constant, table, got %q", priceSourceEnvKey, priceSource)
	}

	logLevel := zerolog.InfoLevel
	if v := loader.Get(logLevelEnvKey); v != "" {
		parsed, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", logLevelEnvKey, err)
		}
		logLevel = parsed
	}

	return Config{
		Transport:             transport,
		Endpoint:              endpoint,
		ContractAddress:       contractAddress,
		AccountAddress:        accountAddress,
		Interval:              interval,
		DefaultDecimals:       decimals,
		TokenMetadataPath:     tokenMetadataPath,
		PriceSource:           priceSource,
		HealthCheckListenAddr: loader.Get(healthCheckListenAddrEnvKey),
		LogLevel:              logLevel,
	}, nil
}

// validateAddress checks that address is bech32 with any human readable prefix
func validateAddress(address string) error {
	_, _, err := bech32.DecodeAndConvert(address)
	return err
}

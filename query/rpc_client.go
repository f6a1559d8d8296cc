package query

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"

	"github.com/kava-labs/collateral-monitor/types"
)

// ABCIClient is the subset of the tendermint rpc client used for queries
type ABCIClient interface {
	ABCIQueryWithOptions(
		ctx context.Context,
		path string,
		data tmbytes.HexBytes,
		opts rpcclient.ABCIQueryOptions,
	) (*ctypes.ResultABCIQuery, error)
}

// RpcClient runs smart queries as ABCI queries through tendermint rpc
type RpcClient struct {
	rpc      ABCIClient
	contract string
	logger   zerolog.Logger
}

var _ PositionFetcher = (*RpcClient)(nil)

// NewRpcClient returns an RpcClient querying contract
func NewRpcClient(rpc ABCIClient, contract string, logger zerolog.Logger) *RpcClient {
	return &RpcClient{
		rpc:      rpc,
		contract: contract,
		logger:   logger,
	}
}

// FetchPositions queries the latest height for the account's positions
func (c *RpcClient) FetchPositions(ctx context.Context, account string, kind QueryKind) (types.PositionSet, error) {
	msg, err := EncodeSmartQuery(kind, account)
	if err != nil {
		return nil, err
	}

	// height 0 is latest
	opts := rpcclient.ABCIQueryOptions{Height: 0, Prove: false}

	result, err := c.rpc.ABCIQueryWithOptions(ctx, SmartContractStatePath, marshalSmartQueryRequest(c.contract, msg), opts)
	if err != nil {
		return nil, NewTransportError(kind, err)
	}

	resp := result.Response
	if !resp.IsOK() {
		return nil, NewRequestFailedError(kind, int(resp.Code), errors.New(resp.Log))
	}

	c.logger.Debug().Int64("height", resp.Height).Str("query", kind.String()).Msg("abci smart query ok")

	data, err := unmarshalSmartQueryResponse(resp.Value)
	if err != nil {
		return nil, NewDecodeError(kind, err)
	}

	positions, err := DecodePositions(data, c.logger)
	if err != nil {
		return nil, NewDecodeError(kind, err)
	}

	return positions, nil
}

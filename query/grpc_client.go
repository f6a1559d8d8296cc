package query

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kava-labs/collateral-monitor/types"
)

var errUnexpectedMessage = errors.New("raw codec expects *[]byte")

// GrpcClient runs smart queries against the wasm gRPC query service
type GrpcClient struct {
	conn     grpc.ClientConnInterface
	contract string
	logger   zerolog.Logger
}

var _ PositionFetcher = (*GrpcClient)(nil)

// NewGrpcClient returns a GrpcClient querying contract over conn
func NewGrpcClient(conn grpc.ClientConnInterface, contract string, logger zerolog.Logger) *GrpcClient {
	return &GrpcClient{
		conn:     conn,
		contract: contract,
		logger:   logger,
	}
}

// FetchPositions invokes SmartContractState for the account's positions
func (c *GrpcClient) FetchPositions(ctx context.Context, account string, kind QueryKind) (types.PositionSet, error) {
	msg, err := EncodeSmartQuery(kind, account)
	if err != nil {
		return nil, err
	}

	req := marshalSmartQueryRequest(c.contract, msg)
	var res []byte

	err = c.conn.Invoke(ctx, SmartContractStatePath, &req, &res, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, ok := status.FromError(err)
		if !ok || st.Code() == codes.Unavailable || st.Code() == codes.DeadlineExceeded || st.Code() == codes.Canceled {
			return nil, NewTransportError(kind, err)
		}
		return nil, NewRequestFailedError(kind, int(st.Code()), errors.New(st.Message()))
	}

	c.logger.Debug().Str("query", kind.String()).Int("bytes", len(res)).Msg("grpc smart query ok")

	data, err := unmarshalSmartQueryResponse(res)
	if err != nil {
		return nil, NewDecodeError(kind, err)
	}

	positions, err := DecodePositions(data, c.logger)
	if err != nil {
		return nil, NewDecodeError(kind, err)
	}

	return positions, nil
}

package query

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kava-labs/collateral-monitor/types"
)

// maxErrorBodySize bounds how much of a failed response is kept in the error
const maxErrorBodySize = 512

// RestClient runs smart queries through the wasm REST endpoint of a node
type RestClient struct {
	restEndpoint string
	contract     string
	client       *http.Client
	logger       zerolog.Logger
}

var _ PositionFetcher = (*RestClient)(nil)

// NewRestClient returns a RestClient using http.DefaultClient. There is no
// timeout beyond the transport default; wrap ctx to add one.
func NewRestClient(restEndpoint, contract string, logger zerolog.Logger) *RestClient {
	return &RestClient{
		restEndpoint: restEndpoint,
		contract:     contract,
		client:       http.DefaultClient,
		logger:       logger,
	}
}

// FetchPositions issues one GET for the account's positions of the given kind
func (c *RestClient) FetchPositions(ctx context.Context, account string, kind QueryKind) (types.PositionSet, error) {
	encoded, err := EncodeSmartQueryPath(kind, account)
	if err != nil {
		return nil, err
	}
	url := SmartQueryURL(c.restEndpoint, c.contract, encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewTransportError(kind, err)
	}

	c.logger.Debug().Str("url", url).Msg("sending smart query")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, NewTransportError(kind, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, NewTransportError(kind, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if len(body) > maxErrorBodySize {
			body = body[:maxErrorBodySize]
		}
		return nil, NewRequestFailedError(kind, res.StatusCode, fmt.Errorf("%s: %s", http.StatusText(res.StatusCode), body))
	}

	positions, err := DecodeRestResponse(body, c.logger)
	if err != nil {
		return nil, NewDecodeError(kind, err)
	}

	return positions, nil
}

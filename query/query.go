package query

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kava-labs/collateral-monitor/types"
)

// QueryKind selects which position list of an account is queried
type QueryKind int

const (
	QueryUserDebts QueryKind = iota + 1
	QueryUserCollaterals
)

func (k QueryKind) String() string {
	switch k {
	case QueryUserDebts:
		return "user_debts"
	case QueryUserCollaterals:
		return "user_collaterals"
	default:
		return fmt.Sprintf("QueryKind(%d)", int(k))
	}
}

// ParseQueryKind parses the wire name of a query kind
func ParseQueryKind(s string) (QueryKind, error) {
	switch s {
	case QueryUserDebts.String():
		return QueryUserDebts, nil
	case QueryUserCollaterals.String():
		return QueryUserCollaterals, nil
	default:
		return 0, fmt.Errorf("unknown query kind %q", s)
	}
}

// EncodeSmartQuery returns the compact json query message, e.g.
// {"user_debts":{"user":"osmo1..."}}
func EncodeSmartQuery(kind QueryKind, account string) ([]byte, error) {
	if kind != QueryUserDebts && kind != QueryUserCollaterals {
		return nil, fmt.Errorf("unknown query kind %d", int(kind))
	}
	return json.Marshal(map[string]map[string]string{
		kind.String(): {"user": account},
	})
}

// EncodeSmartQueryPath returns the query message as url safe base64 for use as
// a path segment
func EncodeSmartQueryPath(kind QueryKind, account string) (string, error) {
	msg, err := EncodeSmartQuery(kind, account)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(msg), nil
}

// SmartQueryURL builds the REST url of a smart query
func SmartQueryURL(restEndpoint, contract, encodedQuery string) string {
	return fmt.Sprintf(
		"%s/cosmwasm/wasm/v1/contract/%s/smart/%s",
		strings.TrimRight(restEndpoint, "/"),
		contract,
		encodedQuery,
	)
}

//go:generate mockgen -destination ../mock/fetcher.go -package mock . PositionFetcher

// PositionFetcher queries the positions of an account from the lending contract
type PositionFetcher interface {
	FetchPositions(ctx context.Context, account string, kind QueryKind) (types.PositionSet, error)
}

// UserPositions are the debts and collaterals of one account
type UserPositions struct {
	Debts       types.PositionSet
	Collaterals types.PositionSet
}

// FetchUserPositions fetches debts and then collaterals. The fetches are never
// concurrent and the first error aborts.
func FetchUserPositions(ctx context.Context, fetcher PositionFetcher, account string) (UserPositions, error) {
	debts, err := fetcher.FetchPositions(ctx, account, QueryUserDebts)
	if err != nil {
		return UserPositions{}, err
	}

	collaterals, err := fetcher.FetchPositions(ctx, account, QueryUserCollaterals)
	if err != nil {
		return UserPositions{}, err
	}

	return UserPositions{
		Debts:       debts,
		Collaterals: collaterals,
	}, nil
}

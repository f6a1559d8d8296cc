package valuation

import (
	"fmt"

	"github.com/kava-labs/collateral-monitor/oracle"
	"github.com/kava-labs/collateral-monitor/types"
)

// DefaultDecimals is the precision assumed for every token without metadata
const DefaultDecimals = 6

// DecimalsLookup returns the number of decimals of a denom
type DecimalsLookup func(denom string) uint32

// FixedDecimals applies the same precision to every denom
func FixedDecimals(decimals uint32) DecimalsLookup {
	return func(string) uint32 { return decimals }
}

// TableDecimals looks up per-denom precision and falls back for unknown denoms
func TableDecimals(table map[string]uint32, fallback uint32) DecimalsLookup {
	decimals := make(map[string]uint32, len(table))
	for denom, d := range table {
		decimals[denom] = d
	}
	return func(denom string) uint32 {
		if d, ok := decimals[denom]; ok {
			return d
		}
		return fallback
	}
}

// Context holds what is needed to value positions
type Context struct {
	Decimals DecimalsLookup
	Oracle   oracle.PriceOracle
}

// NewContext returns a Context with the fixed default precision and the constant oracle
func NewContext() Context {
	return Context{
		Decimals: FixedDecimals(DefaultDecimals),
		Oracle:   oracle.NewConstantOracle(),
	}
}

// ValuationError is returned when a position cannot be valued
type ValuationError struct {
	Denom string
	Err   error
}

// NewValuationError wraps err for denom
func NewValuationError(denom string, err error) *ValuationError {
	return &ValuationError{Denom: denom, Err: err}
}

func (e *ValuationError) Error() string {
	return fmt.Sprintf("failed to value %s: %s", e.Denom, e.Err)
}

func (e *ValuationError) Unwrap() error { return e.Err }

// ValueOf converts a position into value units.
//
// The price, in integer units, is applied to the amount before the decimals
// are removed and again afterwards. All steps saturate at MaxUint128.
func ValueOf(position types.TokenAmount, decimals uint32, priceOracle oracle.PriceOracle) (types.Uint128, error) {
	price, err := priceOracle.PriceOf(position.Denom)
	if err != nil {
		return types.ZeroUint128(), NewValuationError(position.Denom, err)
	}
	units := price.AsIntegerUnits(oracle.PricePrecision)

	scaled := position.Amount.SaturatingMul(units)
	normalized := scaled.QuoPow10(decimals)

	return normalized.SaturatingMul(units), nil
}

// SumValues returns the saturating sum of the value of every position
func SumValues(positions types.PositionSet, decimals DecimalsLookup, priceOracle oracle.PriceOracle) (types.Uint128, error) {
	total := types.ZeroUint128()
	for _, position := range positions {
		value, err := ValueOf(position, decimals(position.Denom), priceOracle)
		if err != nil {
			return types.ZeroUint128(), err
		}
		total = total.SaturatingAdd(value)
	}
	return total, nil
}

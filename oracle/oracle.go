package oracle

import (
	"errors"
	"fmt"

	"github.com/kava-labs/collateral-monitor/types"
)

// PricePrecision is the number of implied decimals in a price's integer units
const PricePrecision = 6

//go:generate mockgen -destination ../mock/oracle.go -package mock . PriceOracle

// PriceOracle returns the unit price of a denom
type PriceOracle interface {
	PriceOf(denom string) (types.DecimalRatio, error)
}

// ErrPriceUnavailable matches any PriceUnavailableError
var ErrPriceUnavailable = errors.New("price unavailable")

// PriceUnavailableError is returned when no price can be found for a denom
type PriceUnavailableError struct {
	Denom string
}

// NewPriceUnavailableError returns a PriceUnavailableError for denom
func NewPriceUnavailableError(denom string) *PriceUnavailableError {
	return &PriceUnavailableError{Denom: denom}
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("price unavailable for denom %s", e.Denom)
}

// Is allows errors.Is(err, ErrPriceUnavailable)
func (e *PriceUnavailableError) Is(target error) bool {
	return target == ErrPriceUnavailable
}

// ConstantOracle prices every denom at 1.000000
type ConstantOracle struct {
	price types.DecimalRatio
}

var _ PriceOracle = ConstantOracle{}

// NewConstantOracle returns a ConstantOracle
func NewConstantOracle() ConstantOracle {
	// 1_000_000 units at 6 decimals
	return ConstantOracle{price: types.MustNewDecimalRatio(1_000_000, 1_000_000)}
}

// PriceOf never fails
func (o ConstantOracle) PriceOf(denom string) (types.DecimalRatio, error) {
	return o.price, nil
}

// TableOracle serves fixed prices from a lookup table
type TableOracle struct {
	prices map[string]types.DecimalRatio
}

var _ PriceOracle = TableOracle{}

// NewTableOracle copies prices into a new TableOracle
func NewTableOracle(prices map[string]types.DecimalRatio) TableOracle {
	table := make(map[string]types.DecimalRatio, len(prices))
	for denom, price := range prices {
		table[denom] = price
	}
	return TableOracle{prices: table}
}

// PriceOf returns a PriceUnavailableError for denoms missing from the table
func (o TableOracle) PriceOf(denom string) (types.DecimalRatio, error) {
	price, ok := o.prices[denom]
	if !ok {
		return types.DecimalRatio{}, NewPriceUnavailableError(denom)
	}
	return price, nil
}

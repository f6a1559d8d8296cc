package types

import (
	"errors"
	"fmt"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
)

// ratioPrecision matches the 18 fractional digits of a CosmWasm Decimal
const ratioPrecision = 18

// ErrZeroDenominator is returned when building a ratio over zero
var ErrZeroDenominator = errors.New("ratio denominator must be positive")

// DecimalRatio is an exact unsigned rational number kept in lowest terms.
// The zero value is not valid; use ZeroRatio.
type DecimalRatio struct {
	Numerator   sdk.Uint
	Denominator sdk.Uint
}

// NewDecimalRatio returns numerator/denominator reduced to lowest terms
func NewDecimalRatio(numerator, denominator Uint128) (DecimalRatio, error) {
	return newRatio(numerator.BigInt(), denominator.BigInt())
}

// MustNewDecimalRatio panics when denominator is zero
func MustNewDecimalRatio(numerator, denominator uint64) DecimalRatio {
	r, err := NewDecimalRatio(NewUint128(numerator), NewUint128(denominator))
	if err != nil {
		panic(err)
	}
	return r
}

func newRatio(num, den *big.Int) (DecimalRatio, error) {
	if den.Sign() == 0 {
		return DecimalRatio{}, ErrZeroDenominator
	}
	if num.Sign() == 0 {
		return ZeroRatio(), nil
	}
	gcd := new(big.Int).GCD(nil, nil, num, den)
	return DecimalRatio{
		Numerator:   sdk.NewUintFromBigInt(new(big.Int).Quo(num, gcd)),
		Denominator: sdk.NewUintFromBigInt(new(big.Int).Quo(den, gcd)),
	}, nil
}

// ZeroRatio returns 0/1
func ZeroRatio() DecimalRatio {
	return DecimalRatio{Numerator: sdk.ZeroUint(), Denominator: sdk.OneUint()}
}

// IsZero reports whether the ratio is 0
func (r DecimalRatio) IsZero() bool {
	return r.Numerator.IsZero()
}

// Equal compares reduced terms
func (r DecimalRatio) Equal(o DecimalRatio) bool {
	return r.Numerator.Equal(o.Numerator) && r.Denominator.Equal(o.Denominator)
}

// AsIntegerUnits returns floor(r * 10^precision), saturated to the Uint128 range.
// A price of 1.5 at precision 6 is 1_500_000 units.
func (r DecimalRatio) AsIntegerUnits(precision uint32) Uint128 {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	units := new(big.Int).Mul(r.Numerator.BigInt(), scale)
	units.Quo(units, r.Denominator.BigInt())
	v, overflow := uint256.FromBig(units)
	return saturate(v, overflow)
}

// Dec renders the ratio with 18 fractional digits, rounding down
func (r DecimalRatio) Dec() sdk.Dec {
	scaled := new(big.Int).Mul(r.Numerator.BigInt(), new(big.Int).Exp(big.NewInt(10), big.NewInt(ratioPrecision), nil))
	scaled.Quo(scaled, r.Denominator.BigInt())
	return sdk.NewDecFromBigIntWithPrec(scaled, ratioPrecision)
}

// RatString returns the exact fraction, e.g. "5/2"
func (r DecimalRatio) RatString() string {
	return fmt.Sprintf("%s/%s", r.Numerator, r.Denominator)
}

func (r DecimalRatio) String() string {
	return r.Dec().String()
}

package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	maxUint128 = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 128)

	// ErrUint128Overflow is returned when parsed text does not fit in 128 bits
	ErrUint128Overflow = errors.New("value overflows uint128")
)

// Uint128 is an unsigned 128 bit integer. Arithmetic saturates at MaxUint128
// instead of wrapping.
type Uint128 struct {
	i uint256.Int
}

// NewUint128 returns a Uint128 from a uint64
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// ZeroUint128 returns 0
func ZeroUint128() Uint128 { return Uint128{} }

// MaxUint128 returns 2^128 - 1
func MaxUint128() Uint128 {
	return Uint128{i: *maxUint128}
}

// ParseUint128 parses base 10 text into a Uint128
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, errors.New("empty amount")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint128{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v.Gt(maxUint128) {
		return Uint128{}, ErrUint128Overflow
	}
	return Uint128{i: *v}, nil
}

// MustParseUint128 is ParseUint128 that panics on error, for constants and tests
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

func saturate(v *uint256.Int, overflow bool) Uint128 {
	if overflow || v.Gt(maxUint128) {
		return MaxUint128()
	}
	return Uint128{i: *v}
}

// SaturatingAdd returns u + o capped at MaxUint128
func (u Uint128) SaturatingAdd(o Uint128) Uint128 {
	return saturate(new(uint256.Int).AddOverflow(&u.i, &o.i))
}

// SaturatingMul returns u * o capped at MaxUint128
func (u Uint128) SaturatingMul(o Uint128) Uint128 {
	return saturate(new(uint256.Int).MulOverflow(&u.i, &o.i))
}

// Quo returns the floor of u / o. Division by zero yields zero.
func (u Uint128) Quo(o Uint128) Uint128 {
	return Uint128{i: *new(uint256.Int).Div(&u.i, &o.i)}
}

// QuoPow10 returns the floor of u / 10^exp. Divisors beyond the 128 bit range
// always yield zero.
func (u Uint128) QuoPow10(exp uint32) Uint128 {
	if exp == 0 {
		return u
	}
	// 10^39 > 2^128 - 1 >= u
	if exp > 38 {
		return ZeroUint128()
	}
	divisor := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(exp)))
	return u.Quo(Uint128{i: *divisor})
}

// IsZero reports whether u == 0
func (u Uint128) IsZero() bool { return u.i.IsZero() }

// Cmp compares u and o and returns -1, 0 or +1
func (u Uint128) Cmp(o Uint128) int { return u.i.Cmp(&o.i) }

// Equal reports whether u == o
func (u Uint128) Equal(o Uint128) bool { return u.i.Eq(&o.i) }

// BigInt returns u as a new big.Int
func (u Uint128) BigInt() *big.Int { return u.i.ToBig() }

func (u Uint128) String() string { return u.i.Dec() }

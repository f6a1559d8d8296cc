package types

import (
	"errors"
	"strings"
)

// ErrEmptyDenom is returned when a token amount is created without a denomination
var ErrEmptyDenom = errors.New("denom cannot be empty")

// TokenAmount is an amount of a single token in its smallest unit
type TokenAmount struct {
	Denom  string
	Amount Uint128
}

// NewTokenAmount returns a TokenAmount, rejecting an empty denom
func NewTokenAmount(denom string, amount Uint128) (TokenAmount, error) {
	if denom == "" {
		return TokenAmount{}, ErrEmptyDenom
	}
	return TokenAmount{Denom: denom, Amount: amount}, nil
}

// MustNewTokenAmount panics on an invalid denom
func MustNewTokenAmount(denom string, amount Uint128) TokenAmount {
	ta, err := NewTokenAmount(denom, amount)
	if err != nil {
		panic(err)
	}
	return ta
}

func (ta TokenAmount) String() string {
	return ta.Amount.String() + ta.Denom
}

// PositionSet holds the debts or the collaterals of one account at one point
// in time. A denom may appear more than once.
type PositionSet []TokenAmount

// Denoms returns the denoms of the set in order, including repeats
func (ps PositionSet) Denoms() []string {
	denoms := make([]string, len(ps))
	for i, p := range ps {
		denoms[i] = p.Denom
	}
	return denoms
}

func (ps PositionSet) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

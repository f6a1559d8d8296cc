package valuation

import (
	"fmt"

	"github.com/kava-labs/collateral-monitor/types"
)

// Result is the outcome of valuing one account's positions
type Result struct {
	TotalDebt       types.Uint128
	TotalCollateral types.Uint128
	Ratio           types.DecimalRatio
}

// CollateralizationRatio returns total collateral value over total debt value.
// An account without debt has a ratio of exactly zero, which means no risk
// rather than an undercollateralized position.
func CollateralizationRatio(debts, collaterals types.PositionSet, ctx Context) (Result, error) {
	totalCollateral, err := SumValues(collaterals, ctx.Decimals, ctx.Oracle)
	if err != nil {
		return Result{}, fmt.Errorf("failed to value collaterals: %w", err)
	}

	totalDebt, err := SumValues(debts, ctx.Decimals, ctx.Oracle)
	if err != nil {
		return Result{}, fmt.Errorf("failed to value debts: %w", err)
	}

	result := Result{
		TotalDebt:       totalDebt,
		TotalCollateral: totalCollateral,
		Ratio:           types.ZeroRatio(),
	}
	if totalDebt.IsZero() {
		return result, nil
	}

	ratio, err := types.NewDecimalRatio(totalCollateral, totalDebt)
	if err != nil {
		return Result{}, err
	}
	result.Ratio = ratio

	return result, nil
}

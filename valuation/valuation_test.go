package valuation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kava-labs/collateral-monitor/oracle"
	"github.com/kava-labs/collateral-monitor/types"
)

func TestValueOfConstantPrice(t *testing.T) {
	o := oracle.NewConstantOracle()

	// 2_000_000 * 1_000_000 / 10^6 * 1_000_000
	value, err := ValueOf(ta("uusdc", "2000000"), 6, o)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000", value.String())

	// no decimals: amount * price * price
	value, err = ValueOf(ta("uusdc", "3"), 0, o)
	require.NoError(t, err)
	assert.Equal(t, "3000000000000", value.String())

	// flooring division drops the remainder before the second multiplication
	value, err = ValueOf(ta("uusdc", "15"), 7, o)
	require.NoError(t, err)
	assert.Equal(t, "1000000", value.String())

	value, err = ValueOf(ta("uusdc", "1"), 13, o)
	require.NoError(t, err)
	assert.True(t, value.IsZero())
}

func TestValueOfTablePrice(t *testing.T) {
	o := oracle.NewTableOracle(map[string]types.DecimalRatio{
		"uatom": types.MustNewDecimalRatio(25, 2), // 12.5
	})

	// 1_000_000 * 12_500_000 / 10^6 * 12_500_000
	value, err := ValueOf(ta("uatom", "1000000"), 6, o)
	require.NoError(t, err)
	assert.Equal(t, "156250000000000", value.String())
}

func TestValueOfSaturates(t *testing.T) {
	o := oracle.NewConstantOracle()

	// max * 1_000_000 overflows, so does the second multiplication
	value, err := ValueOf(types.MustNewTokenAmount("uosmo", types.MaxUint128()), 0, o)
	require.NoError(t, err)
	assert.True(t, value.Equal(types.MaxUint128()))

	// the first product saturates and division brings it back into range
	value, err = ValueOf(types.MustNewTokenAmount("uosmo", types.MaxUint128()), 38, o)
	require.NoError(t, err)
	assert.Equal(t, "3000000", value.String())

	// first step fits but the second overflows
	value, err = ValueOf(ta("uosmo", "340282366920938463463374607431"), 0, o)
	require.NoError(t, err)
	assert.True(t, value.Equal(types.MaxUint128()))
}

func TestValueOfPriceError(t *testing.T) {
	o := oracle.NewTableOracle(nil)

	_, err := ValueOf(ta("uosmo", "1"), 6, o)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oracle.ErrPriceUnavailable))

	var valErr *ValuationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "uosmo", valErr.Denom)
}

func TestSumValues(t *testing.T) {
	o := oracle.NewConstantOracle()
	decimals := FixedDecimals(DefaultDecimals)

	total, err := SumValues(types.PositionSet{}, decimals, o)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	total, err = SumValues(nil, decimals, o)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	total, err = SumValues(types.PositionSet{ta("uosmo", "0")}, decimals, o)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	// repeated denoms are summed, not merged
	total, err = SumValues(types.PositionSet{ta("uosmo", "1000000"), ta("uosmo", "1000000")}, decimals, o)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000", total.String())

	total, err = SumValues(types.PositionSet{
		types.MustNewTokenAmount("uosmo", types.MaxUint128()),
		ta("uusdc", "1"),
	}, FixedDecimals(0), o)
	require.NoError(t, err)
	assert.True(t, total.Equal(types.MaxUint128()))
}

func TestSumValuesPerDenomDecimals(t *testing.T) {
	o := oracle.NewConstantOracle()
	decimals := TableDecimals(map[string]uint32{"wbtc": 8}, DefaultDecimals)

	total, err := SumValues(types.PositionSet{ta("wbtc", "100000000"), ta("uusdc", "1000000")}, decimals, o)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000", total.String())
}

func TestSumValuesAbortsOnPriceError(t *testing.T) {
	o := oracle.NewTableOracle(map[string]types.DecimalRatio{"uusdc": types.MustNewDecimalRatio(1, 1)})

	_, err := SumValues(types.PositionSet{ta("uusdc", "1"), ta("uosmo", "1")}, FixedDecimals(6), o)
	assert.True(t, errors.Is(err, oracle.ErrPriceUnavailable))
}

func ta(denom, amount string) types.TokenAmount {
	return types.MustNewTokenAmount(denom, types.MustParseUint128(amount))
}

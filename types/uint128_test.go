package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint128(t *testing.T) {
	v, err := ParseUint128("2000000")
	require.NoError(t, err)
	assert.Equal(t, "2000000", v.String())

	v, err = ParseUint128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.True(t, v.Equal(MaxUint128()))

	_, err = ParseUint128("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, ErrUint128Overflow)

	for _, bad := range []string{"", "abc", "-1", "1.5", " 10"} {
		_, err := ParseUint128(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestUint128Saturation(t *testing.T) {
	max := MaxUint128()

	assert.True(t, max.SaturatingAdd(NewUint128(1)).Equal(max))
	assert.True(t, max.SaturatingMul(NewUint128(1_000_000)).Equal(max))
	assert.True(t, max.SaturatingMul(max).Equal(max))

	// 2^64 * 2^64 = 2^128 is one past the range
	twoPow64 := MustParseUint128("18446744073709551616")
	assert.True(t, twoPow64.SaturatingMul(twoPow64).Equal(max))

	assert.Equal(t, "5", NewUint128(2).SaturatingAdd(NewUint128(3)).String())
	assert.Equal(t, "6", NewUint128(2).SaturatingMul(NewUint128(3)).String())
	assert.True(t, max.SaturatingMul(ZeroUint128()).IsZero())
}

func TestUint128Quo(t *testing.T) {
	assert.Equal(t, "3", NewUint128(10).Quo(NewUint128(3)).String())
	assert.True(t, NewUint128(10).Quo(ZeroUint128()).IsZero())

	assert.Equal(t, "2", NewUint128(2_999_999).QuoPow10(6).String())
	assert.Equal(t, "7", NewUint128(7).QuoPow10(0).String())
	assert.Equal(t, "3", MaxUint128().QuoPow10(38).String())
	assert.True(t, MaxUint128().QuoPow10(39).IsZero())
	assert.True(t, MaxUint128().QuoPow10(255).IsZero())
}

func TestUint128Cmp(t *testing.T) {
	assert.Equal(t, -1, NewUint128(1).Cmp(NewUint128(2)))
	assert.Equal(t, 0, NewUint128(2).Cmp(NewUint128(2)))
	assert.Equal(t, 1, MaxUint128().Cmp(NewUint128(2)))
}

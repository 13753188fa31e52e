package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func TestSplitWide(t *testing.T) {
	maxUint256 := new(big.Int).Sub(pow2(256), big.NewInt(1))
	mixed, _ := new(big.Int).SetString("0x0123456789abcdef0123456789abcdeffedcba9876543210fedcba9876543210", 0)

	tests := []struct {
		name  string
		value *big.Int
		low   *big.Int
		high  *big.Int
	}{
		{"zero", big.NewInt(0), big.NewInt(0), big.NewInt(0)},
		{"small", big.NewInt(1000), big.NewInt(1000), big.NewInt(0)},
		{"max low limb", new(big.Int).Sub(pow2(128), big.NewInt(1)), new(big.Int).Sub(pow2(128), big.NewInt(1)), big.NewInt(0)},
		{"2^128", pow2(128), big.NewInt(0), big.NewInt(1)},
		{"max uint256", maxUint256, new(big.Int).Sub(pow2(128), big.NewInt(1)), new(big.Int).Sub(pow2(128), big.NewInt(1))},
		{
			"mixed limbs", mixed,
			new(big.Int).And(mixed, new(big.Int).Sub(pow2(128), big.NewInt(1))),
			new(big.Int).Rsh(mixed, 128),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := SplitWide(tt.value)
			require.NoError(t, err)
			require.Equal(t, 0, tt.low.Cmp(u.Low), "low limb %s", u.Low)
			require.Equal(t, 0, tt.high.Cmp(u.High), "high limb %s", u.High)

			require.True(t, u.Low.Sign() >= 0 && u.Low.Cmp(pow2(128)) < 0)
			require.True(t, u.High.Sign() >= 0 && u.High.Cmp(pow2(128)) < 0)
			require.Equal(t, 0, tt.value.Cmp(u.ToBig()))
		})
	}
}

func TestSplitWideDoesNotAliasInput(t *testing.T) {
	v := big.NewInt(42)
	u, err := SplitWide(v)
	require.NoError(t, err)

	v.SetInt64(7)
	require.Equal(t, int64(42), u.Low.Int64())
}

func TestSplitWideOutOfRange(t *testing.T) {
	for _, v := range []*big.Int{
		nil,
		big.NewInt(-1),
		pow2(256),
		new(big.Int).Add(pow2(300), big.NewInt(5)),
	} {
		_, err := SplitWide(v)
		require.ErrorIs(t, err, ErrValueOutOfRange, "value %v", v)
	}
}

func TestUint256Felts(t *testing.T) {
	u, err := SplitWide(new(big.Int).Add(pow2(128), big.NewInt(3)))
	require.NoError(t, err)

	felts := u.Felts()
	require.Len(t, felts, 2)
	require.Equal(t, int64(3), felts[0].Int64())
	require.Equal(t, int64(1), felts[1].Int64())
}

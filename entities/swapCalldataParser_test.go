package entities

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSwapCalldata(t *testing.T) {
	amount := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(7), 128), big.NewInt(9))
	legs := []SwapLeg{
		{TokenIn: tokenA, TokenOut: tokenB, Rate: big.NewInt(100), Protocol: 2, PoolAddress: poolP},
		{TokenIn: tokenB, TokenOut: tokenA, Rate: big.NewInt(30), Protocol: 4, PoolAddress: big.NewInt(77)},
	}
	params := SwapParams{TokenIn: tokenA, TokenOut: tokenA, Amount: amount, MinReceived: big.NewInt(12), Destination: destination}

	calldata, err := BuildSwapCalldata(1, legs, params)
	require.NoError(t, err)

	call, err := ParseSwapCalldata(calldata)
	require.NoError(t, err)
	require.Equal(t, int64(1), call.RouteCount.Int64())
	require.Len(t, call.Legs, 2)
	require.Equal(t, Protocol(4), call.Legs[1].Protocol)
	require.Equal(t, 0, poolP.Cmp(call.Legs[0].PoolAddress))
	require.Equal(t, 0, amount.Cmp(call.Params.Amount))
	require.Equal(t, int64(12), call.Params.MinReceived.Int64())
	require.Equal(t, 0, destination.Cmp(call.Params.Destination))
}

func TestParseSwapCalldataErrors(t *testing.T) {
	_, err := ParseSwapCalldata(Calldata{big.NewInt(1)})
	require.ErrorIs(t, err, ErrCalldataTooShort)

	params := make(Calldata, 1+SwapParamsSize+2)
	for i := range params {
		params[i] = big.NewInt(0)
	}
	_, err = ParseSwapCalldata(params)
	require.ErrorIs(t, err, ErrCalldataMisaligned)

	calldata, err := BuildSwapCalldata(1,
		[]SwapLeg{{TokenIn: tokenA, TokenOut: tokenB, Rate: big.NewInt(1), Protocol: 1, PoolAddress: poolP}},
		SwapParams{TokenIn: tokenA, TokenOut: tokenB, Amount: big.NewInt(1), MinReceived: big.NewInt(0), Destination: destination},
	)
	require.NoError(t, err)

	badProtocol := append(Calldata{}, calldata...)
	badProtocol[4] = big.NewInt(256)
	_, err = ParseSwapCalldata(badProtocol)
	require.ErrorIs(t, err, ErrProtocolOutOfRange)

	badLimb := append(Calldata{}, calldata...)
	badLimb[1+SwapLegSize+3] = new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = ParseSwapCalldata(badLimb)
	require.ErrorIs(t, err, ErrLimbOutOfRange)
}

func TestDescribeSwapCalldata(t *testing.T) {
	calldata, err := BuildSwapCalldata(1,
		[]SwapLeg{{TokenIn: tokenA, TokenOut: tokenB, Rate: big.NewInt(100), Protocol: 2, PoolAddress: poolP}},
		SwapParams{TokenIn: tokenA, TokenOut: tokenB, Amount: big.NewInt(1000), MinReceived: big.NewInt(0), Destination: destination},
	)
	require.NoError(t, err)

	labeled, err := DescribeSwapCalldata(calldata)
	require.NoError(t, err)
	require.Len(t, labeled, len(calldata))

	names := make([]string, len(labeled))
	for i, l := range labeled {
		names[i] = l.Name
	}
	require.Equal(t, []string{
		"route_count",
		"legs[0].token_in", "legs[0].token_out", "legs[0].rate", "legs[0].protocol", "legs[0].pool_address",
		"token_in", "token_out", "amount.low", "amount.high", "min_received.low", "min_received.high", "destination",
	}, names)
	require.Equal(t, int64(1000), labeled[8].Value.Int64())
}

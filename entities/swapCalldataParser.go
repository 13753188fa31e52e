package entities

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

var (
	ErrCalldataTooShort   = errors.New("calldata too short for a swap call")
	ErrCalldataMisaligned = errors.New("calldata length does not match whole swap legs")
	ErrProtocolOutOfRange = errors.New("protocol out of range")
	ErrLimbOutOfRange     = errors.New("uint256 limb wider than 128 bits")
)

// SwapCall is a decoded swap calldata.
type SwapCall struct {
	RouteCount *big.Int
	Legs       []SwapLeg
	Params     SwapParams
}

type LabeledFelt struct {
	Name  string
	Value *big.Int
}

// ParseSwapCalldata reverses BuildSwapCalldata. The leg count is taken
// from the calldata length, not from the route count word.
func ParseSwapCalldata(calldata Calldata) (*SwapCall, error) {
	numLegs, err := countLegs(calldata)
	if err != nil {
		return nil, err
	}

	legs := make([]SwapLeg, 0, numLegs)
	for i := 0; i < numLegs; i++ {
		leg, err := parseSwapLeg(calldata[1+i*SwapLegSize : 1+(i+1)*SwapLegSize])
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		legs = append(legs, leg)
	}

	params, err := parseSwapParams(calldata[1+numLegs*SwapLegSize:])
	if err != nil {
		return nil, err
	}

	return &SwapCall{
		RouteCount: copyFelt(calldata[0]),
		Legs:       legs,
		Params:     params,
	}, nil
}

// DescribeSwapCalldata names every word of a swap calldata, e.g.
// "legs[0].pool_address" or "amount.high".
func DescribeSwapCalldata(calldata Calldata) ([]LabeledFelt, error) {
	numLegs, err := countLegs(calldata)
	if err != nil {
		return nil, err
	}

	labeled := make([]LabeledFelt, 0, len(calldata))
	labeled = append(labeled, LabeledFelt{Name: "route_count", Value: calldata[0]})
	for i := 0; i < numLegs; i++ {
		for j, param := range SwapLegLayout {
			labeled = append(labeled, LabeledFelt{
				Name:  fmt.Sprintf("legs[%d].%s", i, param.Name),
				Value: calldata[1+i*SwapLegSize+j],
			})
		}
	}
	offset := 1 + numLegs*SwapLegSize
	for j, param := range SwapParamsLayout {
		labeled = append(labeled, LabeledFelt{Name: param.Name, Value: calldata[offset+j]})
	}
	return labeled, nil
}

func countLegs(calldata Calldata) (int, error) {
	if len(calldata) < 1+SwapParamsSize {
		return 0, ErrCalldataTooShort
	}
	body := len(calldata) - 1 - SwapParamsSize
	if body%SwapLegSize != 0 {
		return 0, ErrCalldataMisaligned
	}
	return body / SwapLegSize, nil
}

func parseSwapLeg(data Calldata) (SwapLeg, error) {
	protocol := data[3]
	if protocol == nil || protocol.Sign() < 0 || protocol.BitLen() > 8 {
		return SwapLeg{}, ErrProtocolOutOfRange
	}

	return SwapLeg{
		TokenIn:     copyFelt(data[0]),
		TokenOut:    copyFelt(data[1]),
		Rate:        copyFelt(data[2]),
		Protocol:    Protocol(protocol.Uint64()),
		PoolAddress: copyFelt(data[4]),
	}, nil
}

func parseSwapParams(data Calldata) (SwapParams, error) {
	amount, err := joinLimbs(data[2], data[3])
	if err != nil {
		return SwapParams{}, fmt.Errorf("amount: %w", err)
	}
	minReceived, err := joinLimbs(data[4], data[5])
	if err != nil {
		return SwapParams{}, fmt.Errorf("min received: %w", err)
	}

	return SwapParams{
		TokenIn:     copyFelt(data[0]),
		TokenOut:    copyFelt(data[1]),
		Amount:      amount,
		MinReceived: minReceived,
		Destination: copyFelt(data[6]),
	}, nil
}

func joinLimbs(low, high *big.Int) (*big.Int, error) {
	low, high = copyFelt(low), copyFelt(high)
	if low.Sign() < 0 || high.Sign() < 0 || low.BitLen() > 128 || high.BitLen() > 128 {
		return nil, ErrLimbOutOfRange
	}
	return utils.Uint256{Low: low, High: high}.ToBig(), nil
}

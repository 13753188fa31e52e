package entities

import (
	"errors"
	"math/big"

	v3constants "github.com/KyberNetwork/pancake-v3-sdk/constants"
	core "github.com/daoleno/uniswap-sdk-core/entities"
)

var (
	ErrInvalidSlippageTolerance = errors.New("invalid slippage tolerance")
	ErrInvalidExpectedAmount    = errors.New("invalid expected amount")
)

const maxBPS = 10_000

func SlippageFromBPS(bps uint64) *core.Percent {
	return core.NewPercent(new(big.Int).SetUint64(bps), big.NewInt(maxBPS))
}

// MinimumReceived is the least output accepted for an expected output
// under slippageTolerance: expectedOut / (1 + slippageTolerance), floored.
func MinimumReceived(expectedOut *big.Int, slippageTolerance *core.Percent) (*big.Int, error) {
	if slippageTolerance == nil || slippageTolerance.LessThan(v3constants.PercentZero) {
		return nil, ErrInvalidSlippageTolerance
	}
	if expectedOut == nil || expectedOut.Sign() < 0 {
		return nil, ErrInvalidExpectedAmount
	}

	return core.NewFraction(big.NewInt(1), big.NewInt(1)).
		Add(slippageTolerance.Fraction).
		Invert().
		Multiply(core.NewFraction(expectedOut, big.NewInt(1))).Quotient(), nil
}

package entities

import (
	"fmt"
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

type SwapParams struct {
	TokenIn     *big.Int
	TokenOut    *big.Int
	Amount      *big.Int
	MinReceived *big.Int
	Destination *big.Int
}

const SwapParamsSize = 7

var SwapParamsLayout = []ParamType{
	{Name: "token_in", Type: "felt"},
	{Name: "token_out", Type: "felt"},
	{Name: "amount.low", Type: "felt"},
	{Name: "amount.high", Type: "felt"},
	{Name: "min_received.low", Type: "felt"},
	{Name: "min_received.high", Type: "felt"},
	{Name: "destination", Type: "felt"},
}

func (p SwapParams) Encode() (Calldata, error) {
	return EncodeSwapParams(p.TokenIn, p.TokenOut, p.Amount, p.MinReceived, p.Destination)
}

// EncodeSwapParams returns token_in, token_out, amount (low, high),
// min_received (low, high) and destination. Both quantities must fit in
// 256 bits, otherwise the error wraps utils.ErrValueOutOfRange.
func EncodeSwapParams(tokenIn, tokenOut, amount, minReceived, destination *big.Int) (Calldata, error) {
	amountU256, err := utils.SplitWide(amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	minReceivedU256, err := utils.SplitWide(minReceived)
	if err != nil {
		return nil, fmt.Errorf("min received: %w", err)
	}

	return Calldata{
		copyFelt(tokenIn),
		copyFelt(tokenOut),
		amountU256.Low,
		amountU256.High,
		minReceivedU256.Low,
		minReceivedU256.High,
		copyFelt(destination),
	}, nil
}

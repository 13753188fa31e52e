package entities

import (
	"fmt"
	"math/big"
)

// Protocol identifies the liquidity source a leg is routed through. The
// contract owns the numbering; values are passed through untouched.
type Protocol uint8

func (p Protocol) String() string {
	return fmt.Sprintf("protocol(%d)", uint8(p))
}

// SwapLeg is one hop of a route. Rate is an opaque routing weight.
type SwapLeg struct {
	TokenIn     *big.Int
	TokenOut    *big.Int
	Rate        *big.Int
	Protocol    Protocol
	PoolAddress *big.Int
}

const SwapLegSize = 5

var SwapLegLayout = []ParamType{
	{Name: "token_in", Type: "felt"},
	{Name: "token_out", Type: "felt"},
	{Name: "rate", Type: "felt"},
	{Name: "protocol", Type: "felt"},
	{Name: "pool_address", Type: "felt"},
}

// EncodeLegs appends token_in, token_out, rate, protocol and pool_address
// for every leg in order. Nothing is split or range checked; nil fields
// encode as zero.
func EncodeLegs(legs []SwapLeg) Calldata {
	encoded := make(Calldata, 0, SwapLegSize*len(legs))
	for _, leg := range legs {
		encoded = append(encoded,
			copyFelt(leg.TokenIn),
			copyFelt(leg.TokenOut),
			copyFelt(leg.Rate),
			new(big.Int).SetUint64(uint64(leg.Protocol)),
			copyFelt(leg.PoolAddress),
		)
	}
	return encoded
}

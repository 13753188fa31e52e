package entities

import (
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

// Calldata is the flat argument list of a contract call.
type Calldata []*big.Int

type ParamType struct {
	Name string
	Type string
}

func (c Calldata) Hex() []string {
	out := make([]string, len(c))
	for i, v := range c {
		out[i] = utils.FeltHex(v)
	}
	return out
}

func (c Calldata) Strings() []string {
	out := make([]string, len(c))
	for i, v := range c {
		if v == nil {
			out[i] = "0"
			continue
		}
		out[i] = v.String()
	}
	return out
}

// BuildSwapCalldata lays out a swap call as
// [routeCount] ++ EncodeLegs(legs) ++ params.Encode().
// routeCount is written as given and is not checked against len(legs).
func BuildSwapCalldata(routeCount uint64, legs []SwapLeg, params SwapParams) (Calldata, error) {
	encodedParams, err := params.Encode()
	if err != nil {
		return nil, err
	}

	calldata := make(Calldata, 0, 1+SwapLegSize*len(legs)+SwapParamsSize)
	calldata = append(calldata, new(big.Int).SetUint64(routeCount))
	calldata = append(calldata, EncodeLegs(legs)...)
	calldata = append(calldata, encodedParams...)
	return calldata, nil
}

func copyFelt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

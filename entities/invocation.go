package entities

import (
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

// Invocation is one contract call: target contract, entry point and
// its calldata.
type Invocation struct {
	Contract   *big.Int
	EntryPoint string
	Selector   *big.Int
	Calldata   Calldata
}

func NewInvocation(contract *big.Int, entryPoint string, calldata Calldata) Invocation {
	return Invocation{
		Contract:   contract,
		EntryPoint: entryPoint,
		Selector:   utils.GetSelectorFromName(entryPoint),
		Calldata:   calldata,
	}
}

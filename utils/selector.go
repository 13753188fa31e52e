package utils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	DefaultEntryPoint   = "__default__"
	L1DefaultEntryPoint = "__l1_default__"
)

// selectors are the low 250 bits of keccak256(name)
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// GetSelectorFromName returns the entry point selector a contract call
// carries for the method name. The default entry points map to zero.
func GetSelectorFromName(name string) *big.Int {
	if name == DefaultEntryPoint || name == L1DefaultEntryPoint {
		return big.NewInt(0)
	}
	h := new(big.Int).SetBytes(crypto.Keccak256([]byte(name)))
	return h.And(h, selectorMask)
}

package utils

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	ErrValueOutOfRange = errors.New("value out of range for uint256")
)

// Uint256 is a 256-bit quantity as the contract's calldata sees it: two
// 128-bit limbs, low-order limb first.
type Uint256 struct {
	Low  *big.Int
	High *big.Int
}

// SplitWide splits value into its low and high 128-bit limbs so that
// value == Low + High*2^128. Negative values, nil and values of 2^256 or
// more fail with ErrValueOutOfRange.
func SplitWide(value *big.Int) (Uint256, error) {
	if value == nil || value.Sign() < 0 {
		return Uint256{}, ErrValueOutOfRange
	}
	v, overflow := uint256.FromBig(value)
	if overflow {
		return Uint256{}, ErrValueOutOfRange
	}

	// uint256.Int keeps four little-endian 64-bit words
	low := &uint256.Int{v[0], v[1], 0, 0}
	high := &uint256.Int{v[2], v[3], 0, 0}

	return Uint256{
		Low:  low.ToBig(),
		High: high.ToBig(),
	}, nil
}

// ToBig recombines the two limbs.
func (u Uint256) ToBig() *big.Int {
	v := new(big.Int).Lsh(u.High, 128)
	return v.Add(v, u.Low)
}

func (u Uint256) Felts() []*big.Int {
	return []*big.Int{u.Low, u.High}
}

package utils

import (
	"errors"
	"math/big"
)

var (
	ErrIdenticalTokens = errors.New("tokens are identical")
	ErrNilToken        = errors.New("token is nil")
)

// SortsBefore reports whether tokenA orders before tokenB by numeric address.
func SortsBefore(tokenA, tokenB *big.Int) (bool, error) {
	if tokenA == nil || tokenB == nil {
		return false, ErrNilToken
	}
	if tokenA.Cmp(tokenB) == 0 {
		return false, ErrIdenticalTokens
	}
	return tokenA.Cmp(tokenB) < 0, nil
}

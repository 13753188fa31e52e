package entities

import (
	"errors"
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

var (
	ErrTokenNotInvolved = errors.New("token not involved in pool")
)

// Pool is a liquidity pool a leg can route through. Token0 always sorts
// before Token1.
type Pool struct {
	Address  *big.Int
	Token0   *big.Int
	Token1   *big.Int
	Protocol Protocol
}

func NewPool(address, tokenA, tokenB *big.Int, protocol Protocol) (*Pool, error) {
	token0 := tokenA
	token1 := tokenB
	isSorted, err := utils.SortsBefore(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	if !isSorted {
		token0 = tokenB
		token1 = tokenA
	}

	return &Pool{
		Address:  address,
		Token0:   token0,
		Token1:   token1,
		Protocol: protocol,
	}, nil
}

func (p *Pool) InvolvesToken(token *big.Int) bool {
	if token == nil || p.Token0 == nil || p.Token1 == nil {
		return false
	}
	return p.Token0.Cmp(token) == 0 || p.Token1.Cmp(token) == 0
}

// Other returns the token on the other side of the pool.
func (p *Pool) Other(token *big.Int) (*big.Int, error) {
	if !p.InvolvesToken(token) {
		return nil, ErrTokenNotInvolved
	}
	if p.Token0.Cmp(token) == 0 {
		return p.Token1, nil
	}
	return p.Token0, nil
}

// Leg builds the hop that sells tokenIn into this pool.
func (p *Pool) Leg(tokenIn, rate *big.Int) (SwapLeg, error) {
	tokenOut, err := p.Other(tokenIn)
	if err != nil {
		return SwapLeg{}, err
	}
	return SwapLeg{
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		Rate:        rate,
		Protocol:    p.Protocol,
		PoolAddress: p.Address,
	}, nil
}

package entities

import (
	"errors"
	"math/big"

	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

var (
	ErrRouteNoLegs       = errors.New("route must have at least one leg")
	ErrPathNotContinuous = errors.New("path not continuous")
	ErrRatesMismatch     = errors.New("one rate per pool is required")
)

// Route is a checked, continuous sequence of legs from Input to Output.
// BuildSwapCalldata does not need one; it is for callers that want the
// path validated before encoding.
type Route struct {
	Legs   []SwapLeg
	Input  *big.Int
	Output *big.Int
}

func NewRoute(legs []SwapLeg) (*Route, error) {
	if len(legs) == 0 {
		return nil, ErrRouteNoLegs
	}
	for _, leg := range legs {
		if leg.TokenIn == nil || leg.TokenOut == nil {
			return nil, utils.ErrNilToken
		}
	}
	for i := 1; i < len(legs); i++ {
		if legs[i-1].TokenOut.Cmp(legs[i].TokenIn) != 0 {
			return nil, ErrPathNotContinuous
		}
	}

	return &Route{
		Legs:   legs,
		Input:  legs[0].TokenIn,
		Output: legs[len(legs)-1].TokenOut,
	}, nil
}

// NewRouteFromPools walks pools starting from input, picking the other
// token of each pool as the next hop. rates are matched to pools by index.
func NewRouteFromPools(pools []*Pool, input *big.Int, rates []*big.Int) (*Route, error) {
	if len(pools) == 0 {
		return nil, ErrRouteNoLegs
	}
	if len(rates) != len(pools) {
		return nil, ErrRatesMismatch
	}

	legs := make([]SwapLeg, 0, len(pools))
	currentToken := input
	for i, pool := range pools {
		leg, err := pool.Leg(currentToken, rates[i])
		if err != nil {
			return nil, ErrPathNotContinuous
		}
		legs = append(legs, leg)
		currentToken = leg.TokenOut
	}
	return NewRoute(legs)
}

func (r *Route) TokenPath() []*big.Int {
	path := []*big.Int{r.Input}
	for _, leg := range r.Legs {
		path = append(path, leg.TokenOut)
	}
	return path
}

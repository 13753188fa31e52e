package entities

import (
	"errors"

	"github.com/dangthanhduong01/starkswap-sdk/constants"
)

var (
	ErrMissingSwapParams = errors.New("swap params not set")
)

// SwapPlanner collects the legs and final params of one swap call.
type SwapPlanner struct {
	RouteCount uint64
	Legs       []SwapLeg

	params *SwapParams
}

func NewSwapPlanner() *SwapPlanner {
	return &SwapPlanner{
		RouteCount: constants.DefaultRouteCount,
		Legs:       []SwapLeg{},
	}
}

func (p *SwapPlanner) AddLeg(leg SwapLeg) *SwapPlanner {
	p.Legs = append(p.Legs, leg)
	return p
}

func (p *SwapPlanner) AddRoute(route *Route) *SwapPlanner {
	p.Legs = append(p.Legs, route.Legs...)
	return p
}

// SetRouteCount overrides the route count word. It is written as given.
func (p *SwapPlanner) SetRouteCount(count uint64) *SwapPlanner {
	p.RouteCount = count
	return p
}

func (p *SwapPlanner) SetParams(params SwapParams) *SwapPlanner {
	p.params = &params
	return p
}

func (p *SwapPlanner) Build() (Calldata, error) {
	if p.params == nil {
		return nil, ErrMissingSwapParams
	}
	return BuildSwapCalldata(p.RouteCount, p.Legs, *p.params)
}

package fee

import (
	"context"
	"errors"
	"math/big"
)

var (
	ErrInvalidMaxFee = errors.New("max fee must be positive")
)

const maxBPS = 10_000

// Estimator returns the maximum fee, in smallest units, a transaction
// may spend.
type Estimator interface {
	EstimateFee(ctx context.Context) (*big.Int, error)
}

type StaticEstimator struct {
	maxFee *big.Int
}

func NewStaticEstimator(maxFee *big.Int) (*StaticEstimator, error) {
	if maxFee == nil || maxFee.Sign() <= 0 {
		return nil, ErrInvalidMaxFee
	}
	return &StaticEstimator{maxFee: new(big.Int).Set(maxFee)}, nil
}

func (e *StaticEstimator) EstimateFee(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(e.maxFee), nil
}

// MultiplierEstimator scales the backend estimate by bps/10000, e.g.
// 12000 for a 20% margin.
type MultiplierEstimator struct {
	backend Estimator
	bps     uint64
}

func NewMultiplierEstimator(backend Estimator, bps uint64) *MultiplierEstimator {
	return &MultiplierEstimator{
		backend: backend,
		bps:     bps,
	}
}

func (e *MultiplierEstimator) EstimateFee(ctx context.Context) (*big.Int, error) {
	fee, err := e.backend.EstimateFee(ctx)
	if err != nil {
		return nil, err
	}
	fee = new(big.Int).Mul(fee, new(big.Int).SetUint64(e.bps))
	return fee.Div(fee, big.NewInt(maxBPS)), nil
}

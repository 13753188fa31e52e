package fee

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// CacheEstimator reuses the backend fee until ttl expires. Only worthwhile
// over a backend that queries the network.
type CacheEstimator struct {
	ttl     time.Duration
	backend Estimator

	mu       sync.Mutex
	expireAt time.Time
	maxFee   *big.Int
}

func NewCacheEstimator(backend Estimator, ttl time.Duration) *CacheEstimator {
	return &CacheEstimator{
		ttl:     ttl,
		backend: backend,
	}
}

func (c *CacheEstimator) EstimateFee(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxFee == nil || c.expireAt.Before(time.Now()) {
		err := c.updateFee(ctx)
		if err != nil {
			return nil, fmt.Errorf("update fee: %w", err)
		}
	}

	return new(big.Int).Set(c.maxFee), nil
}

func (c *CacheEstimator) updateFee(ctx context.Context) error {
	maxFee, err := c.backend.EstimateFee(ctx)
	if err != nil {
		return err
	}

	c.expireAt = time.Now().Add(c.ttl)
	c.maxFee = maxFee
	return nil
}

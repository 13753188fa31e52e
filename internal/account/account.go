package account

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dangthanhduong01/starkswap-sdk/entities"
)

// Account sends invocations on behalf of one address. Signing and
// transport belong to the implementation.
type Account interface {
	Address() *big.Int
	Send(ctx context.Context, invocation entities.Invocation, maxFee *big.Int) (*Transaction, error)
}

type Provider interface {
	GetOrDeployAccount(ctx context.Context, identifier string) (Account, error)
}

type Status string

const (
	StatusDryRun Status = "DRY_RUN"
)

// Transaction is the handle returned by Send. Callers only log it.
type Transaction struct {
	Hash       common.Hash
	Sender     *big.Int
	Nonce      uint64
	Invocation entities.Invocation
	MaxFee     *big.Int
	Status     Status
}

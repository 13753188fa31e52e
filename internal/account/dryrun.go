package account

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"

	"github.com/dangthanhduong01/starkswap-sdk/entities"
	"github.com/dangthanhduong01/starkswap-sdk/internal/fee"
	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

var (
	ErrUnknownAccount = errors.New("unknown account")
)

// DryRunProvider resolves account identifiers from a fixed table and
// hands out accounts that log invocations instead of submitting them.
type DryRunProvider struct {
	addresses map[string]*big.Int

	mu       sync.Mutex
	accounts map[string]*DryRunAccount
}

func NewDryRunProvider(addresses map[string]string) (*DryRunProvider, error) {
	parsed := make(map[string]*big.Int, len(addresses))
	for id, addr := range addresses {
		v, err := utils.ParseFelt(addr)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		parsed[id] = v
	}

	return &DryRunProvider{
		addresses: parsed,
		accounts:  make(map[string]*DryRunAccount),
	}, nil
}

func (p *DryRunProvider) GetOrDeployAccount(_ context.Context, identifier string) (Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if acc, ok := p.accounts[identifier]; ok {
		return acc, nil
	}
	address, ok := p.addresses[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, identifier)
	}

	acc := &DryRunAccount{
		identifier: identifier,
		address:    address,
	}
	p.accounts[identifier] = acc
	return acc, nil
}

type DryRunAccount struct {
	identifier string
	address    *big.Int

	mu    sync.Mutex
	nonce uint64
}

func (a *DryRunAccount) Address() *big.Int {
	return new(big.Int).Set(a.address)
}

func (a *DryRunAccount) Send(ctx context.Context, invocation entities.Invocation, maxFee *big.Int) (*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxFee == nil || maxFee.Sign() <= 0 {
		return nil, fee.ErrInvalidMaxFee
	}

	a.mu.Lock()
	nonce := a.nonce
	a.nonce++
	a.mu.Unlock()

	tx := &Transaction{
		Hash:       invocationHash(a.address, nonce, invocation, maxFee),
		Sender:     a.Address(),
		Nonce:      nonce,
		Invocation: invocation,
		MaxFee:     new(big.Int).Set(maxFee),
		Status:     StatusDryRun,
	}

	logrus.WithFields(logrus.Fields{
		"account":     a.identifier,
		"sender":      utils.FeltHex(a.address),
		"nonce":       nonce,
		"contract":    utils.FeltHex(invocation.Contract),
		"entry_point": invocation.EntryPoint,
		"selector":    utils.FeltHex(invocation.Selector),
		"calldata":    invocation.Calldata.Hex(),
		"max_fee":     maxFee.String(),
		"hash":        tx.Hash.Hex(),
	}).Info("Dry-run invocation, not submitted")

	return tx, nil
}

// invocationHash identifies a dry-run invocation locally; it is not a
// chain transaction hash.
func invocationHash(sender *big.Int, nonce uint64, invocation entities.Invocation, maxFee *big.Int) common.Hash {
	words := make([][]byte, 0, 5+len(invocation.Calldata))
	words = append(words,
		word(sender),
		word(new(big.Int).SetUint64(nonce)),
		word(invocation.Contract),
		word(invocation.Selector),
		word(maxFee),
	)
	for _, v := range invocation.Calldata {
		words = append(words, word(v))
	}
	return crypto.Keccak256Hash(words...)
}

func word(v *big.Int) []byte {
	if v == nil {
		return make([]byte, 32)
	}
	return common.LeftPadBytes(v.Bytes(), 32)
}

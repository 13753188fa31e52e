package main

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/dangthanhduong01/starkswap-sdk/constants"
	"github.com/dangthanhduong01/starkswap-sdk/entities"
	"github.com/dangthanhduong01/starkswap-sdk/internal/account"
	"github.com/dangthanhduong01/starkswap-sdk/internal/config"
	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

type recordingAccount struct {
	address *big.Int
	sent    []entities.Invocation
	fees    []*big.Int
}

func (a *recordingAccount) Address() *big.Int { return a.address }

func (a *recordingAccount) Send(_ context.Context, invocation entities.Invocation, maxFee *big.Int) (*account.Transaction, error) {
	a.sent = append(a.sent, invocation)
	a.fees = append(a.fees, maxFee)
	return &account.Transaction{Invocation: invocation, MaxFee: maxFee, Status: account.StatusDryRun}, nil
}

type staticProvider struct {
	acc account.Account
}

func (p staticProvider) GetOrDeployAccount(_ context.Context, _ string) (account.Account, error) {
	return p.acc, nil
}

func testConfig() config.Config {
	return config.Config{
		Account:     "MAINNET_DEPLOYER",
		Contract:    "mainnet_test",
		Contracts:   map[string]string{"mainnet_test": "0x0456"},
		EntryPoint:  constants.SwapEntryPoint,
		MaxFee:      "0.001036985597507538",
		FeeDecimals: constants.FeeDecimals,
		Swaps: []config.Swap{{
			Legs: []config.Leg{{
				TokenIn:     utils.FeltHex(constants.EthAddress),
				TokenOut:    utils.FeltHex(constants.UsdcAddress),
				Rate:        "100",
				Protocol:    2,
				PoolAddress: utils.FeltHex(constants.EthUsdcPool),
			}},
			TokenIn:  utils.FeltHex(constants.EthAddress),
			TokenOut: utils.FeltHex(constants.UsdcAddress),
			Amount:   "0.001",
			Decimals: constants.EthDecimals,
		}},
	}
}

func TestMakeSwaps(t *testing.T) {
	cfg := testConfig()
	acc := &recordingAccount{address: big.NewInt(0x123)}

	estimator, err := newFeeEstimator(cfg)
	require.NoError(t, err)

	err = makeSwaps(context.Background(), cfg, staticProvider{acc: acc}, estimator)
	require.NoError(t, err)

	require.Len(t, acc.sent, 1)
	inv := acc.sent[0]
	require.Equal(t, int64(0x456), inv.Contract.Int64())
	require.Equal(t, 0, utils.GetSelectorFromName("swap").Cmp(inv.Selector))
	require.Equal(t, []string{
		"1",
		constants.EthAddress.String(), constants.UsdcAddress.String(), "100", "2", constants.EthUsdcPool.String(),
		constants.EthAddress.String(), constants.UsdcAddress.String(), "1000000000000000", "0", "0", "0", "291",
	}, inv.Calldata.Strings())
	require.Equal(t, "1036985597507538", acc.fees[0].String())
}

func TestNewFeeEstimator(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFee = "0.001"
	cfg.FeeMultiplierBPS = 15_000
	cfg.FeeCacheTTL = time.Minute

	estimator, err := newFeeEstimator(cfg)
	require.NoError(t, err)

	maxFee, err := estimator.EstimateFee(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1500000000000000", maxFee.String())

	cfg.MaxFee = "0"
	_, err = newFeeEstimator(cfg)
	require.Error(t, err)
}

func TestRunAppDryRunFlag(t *testing.T) {
	exampleConfig := filepath.Join("..", "..", "config.example.yaml")

	err := newApp().Run([]string{"swap", "--config", exampleConfig})
	require.NoError(t, err)

	err = newApp().Run([]string{"swap", "--config", exampleConfig, "--dry-run=false"})
	require.ErrorIs(t, err, ErrLiveSendUnsupported)

	t.Setenv("DRY_RUN", "false")
	err = newApp().Run([]string{"swap", "--config", exampleConfig})
	require.ErrorIs(t, err, ErrLiveSendUnsupported)
}

func TestMakeSwapLogsHumanUnits(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cfg := testConfig()
	estimator, err := newFeeEstimator(cfg)
	require.NoError(t, err)

	acc := &recordingAccount{address: big.NewInt(0x123)}
	_, err = makeSwap(context.Background(), acc, estimator, big.NewInt(0x456), cfg.EntryPoint, cfg.FeeDecimals, cfg.Swaps[0])
	require.NoError(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.InfoLevel {
			messages = append(messages, entry.Message)
		}
	}
	require.Contains(t, messages, "Invoking with max_fee 0.001036985597507538 and amount 0.001")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dangthanhduong01/starkswap-sdk/entities"
	"github.com/dangthanhduong01/starkswap-sdk/internal/account"
	"github.com/dangthanhduong01/starkswap-sdk/internal/config"
	"github.com/dangthanhduong01/starkswap-sdk/internal/fee"
	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

const (
	flagNameConfig   = "config"
	flagNameLogLevel = "log-level"
	flagNameDryRun   = "dry-run"

	sendTimeout = 30 * time.Second
)

var (
	ErrLiveSendUnsupported = errors.New("live sending is not supported, only --dry-run")
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatalln("App exit with error:", err)
	}

	logrus.Info("App exit successfully")
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "swap"
	app.Usage = "Encode and send swap invocations"
	app.Action = runApp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagNameConfig,
			EnvVars: []string{"CONFIG"},
			Value:   "config.yaml",
			Usage:   "Path to configuration file",
		},
		&cli.StringFlag{
			Name:    flagNameLogLevel,
			EnvVars: []string{"LOG_LEVEL"},
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:    flagNameDryRun,
			EnvVars: []string{"DRY_RUN"},
			Value:   true,
			Usage:   "Log invocations instead of submitting them",
		},
	}
	return app
}

func runApp(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String(flagNameLogLevel))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)

	if !c.Bool(flagNameDryRun) {
		return ErrLiveSendUnsupported
	}

	configFile := c.String(flagNameConfig)
	logrus.Infof("Load config from file: %s", configFile)
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		logrus.Errorf("Fail to load config from file: %v", err)
		return err
	}

	provider, err := account.NewDryRunProvider(cfg.Accounts)
	if err != nil {
		return fmt.Errorf("create account provider: %w", err)
	}

	estimator, err := newFeeEstimator(cfg)
	if err != nil {
		return fmt.Errorf("create fee estimator: %w", err)
	}

	return makeSwaps(c.Context, cfg, provider, estimator)
}

func newFeeEstimator(cfg config.Config) (fee.Estimator, error) {
	maxFee, err := cfg.MaxFeeUnits()
	if err != nil {
		return nil, err
	}

	var estimator fee.Estimator
	estimator, err = fee.NewStaticEstimator(maxFee)
	if err != nil {
		return nil, err
	}
	if cfg.FeeMultiplierBPS > 0 {
		estimator = fee.NewMultiplierEstimator(estimator, cfg.FeeMultiplierBPS)
	}
	if cfg.FeeCacheTTL > 0 {
		estimator = fee.NewCacheEstimator(estimator, cfg.FeeCacheTTL)
	}
	return estimator, nil
}

func makeSwaps(ctx context.Context, cfg config.Config, provider account.Provider, estimator fee.Estimator) error {
	acc, err := provider.GetOrDeployAccount(ctx, cfg.Account)
	if err != nil {
		logrus.Errorf("Fail to get account: account=%s err=%v", cfg.Account, err)
		return err
	}

	contract, err := cfg.ResolveContract(cfg.Contract)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, swap := range cfg.Swaps {
		i, swap := i, swap
		g.Go(func() error {
			tx, err := makeSwap(ctx, acc, estimator, contract, cfg.EntryPoint, cfg.FeeDecimals, swap)
			if err != nil {
				logrus.Errorf("Fail to make swap: index=%d err=%v", i, err)
				return fmt.Errorf("swap %d: %w", i, err)
			}

			logrus.WithFields(logrus.Fields{
				"index":  i,
				"hash":   tx.Hash.Hex(),
				"nonce":  tx.Nonce,
				"status": tx.Status,
			}).Info("Successfully make swap")
			return nil
		})
	}

	return g.Wait()
}

func makeSwap(
	ctx context.Context,
	acc account.Account,
	estimator fee.Estimator,
	contract *big.Int,
	entryPoint string,
	feeDecimals uint,
	swap config.Swap,
) (*account.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	legs, err := swap.SwapLegs()
	if err != nil {
		return nil, err
	}
	params, err := swap.SwapParams(acc.Address())
	if err != nil {
		return nil, err
	}

	calldata, err := entities.BuildSwapCalldata(swap.Count(), legs, params)
	if err != nil {
		return nil, fmt.Errorf("build calldata: %w", err)
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logCalldata(calldata)
	}

	maxFee, err := estimator.EstimateFee(ctx)
	if err != nil {
		return nil, fmt.Errorf("estimate fee: %w", err)
	}

	logrus.Infof("Invoking with max_fee %s and amount %s",
		utils.FormatUnits(maxFee, feeDecimals), utils.FormatUnits(params.Amount, swap.Decimals))
	return acc.Send(ctx, entities.NewInvocation(contract, entryPoint, calldata), maxFee)
}

func logCalldata(calldata entities.Calldata) {
	labeled, err := entities.DescribeSwapCalldata(calldata)
	if err != nil {
		logrus.Debugf("Calldata: %v", calldata.Hex())
		return
	}
	for _, l := range labeled {
		logrus.Debugf("Calldata %s = %s", l.Name, utils.FeltHex(l.Value))
	}
}

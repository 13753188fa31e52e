package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/dangthanhduong01/starkswap-sdk/constants"
	"github.com/dangthanhduong01/starkswap-sdk/entities"
	"github.com/dangthanhduong01/starkswap-sdk/utils"
)

var (
	ErrMissingAccount  = errors.New("account is required")
	ErrMissingContract = errors.New("contract is required")
	ErrMissingMaxFee   = errors.New("max_fee is required")
	ErrNoSwaps         = errors.New("at least one swap is required")
)

type Leg struct {
	TokenIn     string `yaml:"token_in"`
	TokenOut    string `yaml:"token_out"`
	Rate        string `yaml:"rate"`
	Protocol    uint8  `yaml:"protocol"`
	PoolAddress string `yaml:"pool_address"`
}

type Swap struct {
	// RouteCount is written into the calldata as given; it defaults to 1
	// and is not derived from Legs.
	RouteCount  *uint64 `yaml:"route_count"`
	Legs        []Leg   `yaml:"legs"`
	TokenIn     string  `yaml:"token_in"`
	TokenOut    string  `yaml:"token_out"`
	Amount      string  `yaml:"amount"`
	Decimals    uint    `yaml:"decimals"`
	MinReceived string  `yaml:"min_received"`
	ExpectedOut string  `yaml:"expected_out"`
	SlippageBPS uint64  `yaml:"slippage_bps"`
	Destination string  `yaml:"destination"`
}

type Config struct {
	Account          string            `yaml:"account"`
	Accounts         map[string]string `yaml:"accounts"`
	Contract         string            `yaml:"contract"`
	Contracts        map[string]string `yaml:"contracts"`
	EntryPoint       string            `yaml:"entry_point"`
	MaxFee           string            `yaml:"max_fee"`
	FeeDecimals      uint              `yaml:"fee_decimals"`
	FeeMultiplierBPS uint64            `yaml:"fee_multiplier_bps"`
	FeeCacheTTL      time.Duration     `yaml:"fee_cache_ttl"`
	Swaps            []Swap            `yaml:"swaps"`
}

func LoadFromFile(fpath string) (Config, error) {
	cfg := Config{
		EntryPoint:  constants.SwapEntryPoint,
		FeeDecimals: constants.FeeDecimals,
	}

	f, err := os.Open(fpath)
	if err != nil {
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Account == "" {
		return ErrMissingAccount
	}
	if c.Contract == "" {
		return ErrMissingContract
	}
	if c.MaxFee == "" {
		return ErrMissingMaxFee
	}
	if len(c.Swaps) == 0 {
		return ErrNoSwaps
	}
	if c.FeeDecimals > utils.MaxDecimals {
		return fmt.Errorf("fee_decimals: %w: %d", utils.ErrDecimalsOutOfRange, c.FeeDecimals)
	}
	for i, s := range c.Swaps {
		if s.Decimals > utils.MaxDecimals {
			return fmt.Errorf("swap %d decimals: %w: %d", i, utils.ErrDecimalsOutOfRange, s.Decimals)
		}
	}
	return nil
}

// ResolveContract returns the address of a contract alias from the
// contracts table, or parses the value as an address.
func (c Config) ResolveContract(aliasOrAddress string) (*big.Int, error) {
	if address, ok := c.Contracts[aliasOrAddress]; ok {
		aliasOrAddress = address
	}
	address, err := utils.ParseFelt(aliasOrAddress)
	if err != nil {
		return nil, fmt.Errorf("resolve contract %q: %w", aliasOrAddress, err)
	}
	return address, nil
}

func (c Config) MaxFeeUnits() (*big.Int, error) {
	return utils.ParseUnits(c.MaxFee, c.FeeDecimals)
}

func (s Swap) Count() uint64 {
	if s.RouteCount == nil {
		return constants.DefaultRouteCount
	}
	return *s.RouteCount
}

func (s Swap) SwapLegs() ([]entities.SwapLeg, error) {
	legs := make([]entities.SwapLeg, 0, len(s.Legs))
	for i, l := range s.Legs {
		leg, err := l.SwapLeg()
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// SwapParams converts the human amounts into smallest units. min_received
// wins over expected_out/slippage_bps; with neither the minimum is zero.
func (s Swap) SwapParams(defaultDestination *big.Int) (entities.SwapParams, error) {
	tokenIn, err := parseField("token_in", s.TokenIn)
	if err != nil {
		return entities.SwapParams{}, err
	}
	tokenOut, err := parseField("token_out", s.TokenOut)
	if err != nil {
		return entities.SwapParams{}, err
	}
	amount, err := utils.ParseUnits(s.Amount, s.Decimals)
	if err != nil {
		return entities.SwapParams{}, err
	}

	minReceived := big.NewInt(0)
	switch {
	case s.MinReceived != "":
		minReceived, err = parseField("min_received", s.MinReceived)
		if err != nil {
			return entities.SwapParams{}, err
		}
	case s.ExpectedOut != "":
		expectedOut, err := parseField("expected_out", s.ExpectedOut)
		if err != nil {
			return entities.SwapParams{}, err
		}
		minReceived, err = entities.MinimumReceived(expectedOut, entities.SlippageFromBPS(s.SlippageBPS))
		if err != nil {
			return entities.SwapParams{}, err
		}
	}

	destination := defaultDestination
	if s.Destination != "" {
		destination, err = parseField("destination", s.Destination)
		if err != nil {
			return entities.SwapParams{}, err
		}
	}

	return entities.SwapParams{
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		Amount:      amount,
		MinReceived: minReceived,
		Destination: destination,
	}, nil
}

func (l Leg) SwapLeg() (entities.SwapLeg, error) {
	tokenIn, err := parseField("token_in", l.TokenIn)
	if err != nil {
		return entities.SwapLeg{}, err
	}
	tokenOut, err := parseField("token_out", l.TokenOut)
	if err != nil {
		return entities.SwapLeg{}, err
	}
	rate, err := parseField("rate", l.Rate)
	if err != nil {
		return entities.SwapLeg{}, err
	}
	pool, err := parseField("pool_address", l.PoolAddress)
	if err != nil {
		return entities.SwapLeg{}, err
	}

	return entities.SwapLeg{
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		Rate:        rate,
		Protocol:    entities.Protocol(l.Protocol),
		PoolAddress: pool,
	}, nil
}

func parseField(name, value string) (*big.Int, error) {
	v, err := utils.ParseFelt(value)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", name, value, err)
	}
	return v, nil
}

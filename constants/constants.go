package constants

import "github.com/dangthanhduong01/starkswap-sdk/utils"

const (
	SwapEntryPoint    = "swap"
	DefaultRouteCount = 1
	FeeDecimals       = 18
	EthDecimals       = 18
	UsdcDecimals      = 6
)

// Mainnet addresses the swap script trades against.
var (
	EthAddress  = utils.MustParseFelt("0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7")
	UsdcAddress = utils.MustParseFelt("0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8")
	EthUsdcPool = utils.MustParseFelt("0x04d0390b777b424e43839cd1e744799f3de6c176c7e32c1812a41dbd9c19db6a")
)

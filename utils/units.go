package utils

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxDecimals is the widest decimals exponent accepted; 10^78 already
// exceeds 2^256.
const MaxDecimals = 77

var (
	ErrDecimalsOutOfRange = errors.New("decimals out of range")
)

// ToDecimalUnits converts a human readable amount into smallest units,
// trunc(amount * 10^decimals). The fractional remainder below one unit is
// dropped, never rounded. The float goes through its shortest decimal
// representation first, so ToDecimalUnits(0.001, 18) is exactly 10^15.
// NaN, infinities and decimals above MaxDecimals panic.
func ToDecimalUnits(amount float64, decimals uint) *big.Int {
	if decimals > MaxDecimals {
		panic(fmt.Errorf("%w: %d", ErrDecimalsOutOfRange, decimals))
	}
	return toUnits(decimal.NewFromFloat(amount), decimals)
}

// ParseUnits is ToDecimalUnits for an exact decimal string such as "0.001".
func ParseUnits(amount string, decimals uint) (*big.Int, error) {
	if decimals > MaxDecimals {
		return nil, fmt.Errorf("%w: %d", ErrDecimalsOutOfRange, decimals)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return toUnits(d, decimals), nil
}

// FormatUnits renders a smallest-unit amount back as a decimal string.
// Out of range decimals render the raw amount.
func FormatUnits(amount *big.Int, decimals uint) string {
	if amount == nil {
		return "0"
	}
	if decimals > MaxDecimals {
		return amount.String()
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

func toUnits(d decimal.Decimal, decimals uint) *big.Int {
	return d.Shift(int32(decimals)).Truncate(0).BigInt()
}

package utils

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrInvalidFelt = errors.New("invalid felt")
)

var feltHexRe = regexp.MustCompile("^0x[0-9a-fA-F]{1,64}$")

// ParseFelt parses a chain-native identifier or integer. Hex strings must
// carry the 0x prefix and may keep their leading zeros
// (0x049d...), anything else is read as base 10.
func ParseFelt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = "0x" + s[2:]
		if !feltHexRe.MatchString(s) {
			return nil, ErrInvalidFelt
		}
		return new(big.Int).SetBytes(common.FromHex(s)), nil
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, ErrInvalidFelt
	}
	return v, nil
}

func MustParseFelt(s string) *big.Int {
	v, err := ParseFelt(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FeltHex renders v as 0x-prefixed hex without leading zeros; nil renders as 0x0.
func FeltHex(v *big.Int) string {
	if v == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(v)
}

package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal token amount such as "0.0003" into wei
func ParseAmount(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: negative amount %q", ErrInvalidAmount, amount)
	}
	wei := d.Shift(NATIVE_TOKEN_DECIMALS)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, amount, NATIVE_TOKEN_DECIMALS)
	}
	return wei.BigInt(), nil
}

// FormatAmount converts wei into a decimal token amount without trailing zeros
func FormatAmount(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -NATIVE_TOKEN_DECIMALS).String()
}

// IsHexAddress checks if s is a 20-byte hex address
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

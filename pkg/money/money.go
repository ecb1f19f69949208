package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is the additive identity for peso amounts.
var Zero = decimal.Zero

// FromString parses a decimal peso amount, trimming surrounding space.
func FromString(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

// MustFromString parses a compile-time-known amount and panics on bad input.
// Reserved for config defaults and tests.
func MustFromString(value string) decimal.Decimal {
	d, err := FromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Pesos formats an amount with the peso sign and no trailing zeros, matching
// the storefront's display format ("₱140", "₱40.50").
func Pesos(amount decimal.Decimal) string {
	s := amount.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return "₱" + s
}

// IsNegative reports whether the amount is below zero.
func IsNegative(amount decimal.Decimal) bool {
	return amount.Sign() < 0
}

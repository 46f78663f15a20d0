// Package money keeps prices exact. Amounts travel as JSON numbers and are
// only rounded to two places when rendered.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Format renders an amount with exactly two decimal places
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// LineTotal returns price × quantity
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Parse reads a decimal amount and rejects negatives
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q is negative", s)
	}
	return d, nil
}

// MustParse is Parse for constants; it panics on invalid input
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

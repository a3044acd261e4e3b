// Package decimal provides small helpers over shopspring/decimal for the
// money-shaped fields on Check and Receipt (amount, totals, line items).
package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero.
var Zero = decimal.Zero

// FromInt creates a decimal from an int64.
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates a decimal from a float64, rounded to 2 places.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses a decimal from a string.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Round2 rounds to 2 decimal places, the common case for currency amounts.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum sums a slice of decimals.
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsPositive reports whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative reports whether d is greater than or equal to zero.
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// ApproxEqual reports whether a and b differ by no more than tolerance,
// expressed as a fraction of b's magnitude (or an absolute tolerance when
// b is zero). Used for the Receipt soft consistency check in spec.md §3.
func ApproxEqual(a, b decimal.Decimal, tolerance decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	if b.IsZero() {
		return diff.LessThanOrEqual(tolerance)
	}
	relDiff := diff.Div(b.Abs())
	return relDiff.LessThanOrEqual(tolerance)
}

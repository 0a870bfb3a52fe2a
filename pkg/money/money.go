// Package money converts between decimal currency amounts and integer cents.
// All order arithmetic happens in cents so that repeated float64 additions
// never accumulate binary rounding error.
package money

import "math"

// ToCents rounds amount*100 to the nearest integer. Ties round away from
// zero (half-up for the non-negative prices this system deals in).
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts cents back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

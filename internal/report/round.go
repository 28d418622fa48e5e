// ABOUTME: Display rounding for report numbers.
// ABOUTME: Rounds half away from zero with shopspring/decimal; NaN and Inf print as n/a.
package report

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fixed formats v with exactly places decimals.
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Signed is Fixed with an explicit sign for non-negative values.
func Signed(v float64, places int32) string {
	s := Fixed(v, places)
	if s == "n/a" {
		return s
	}
	if v >= 0 && s[0] != '-' {
		return "+" + s
	}
	return s
}

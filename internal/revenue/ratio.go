// ABOUTME: Computes the week's revenue ratio from absolute amounts held in memory.
// ABOUTME: Amounts are never returned to callers that persist; only the ratio leaves.
package revenue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// RatioPlaces is the precision of a computed revenue ratio.
const RatioPlaces = 4

var (
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrNonPositiveBaseline = errors.New("baseline revenue must be positive")
	ErrNegativeRevenue     = errors.New("revenue must not be negative")
)

// Amount builds a money value, rejecting currency codes go-money does not know.
func Amount(value float64, code string) (*money.Money, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return money.NewFromFloat(value, code), nil
}

// Ratio returns current divided by baseline, rounded to RatioPlaces.
func Ratio(current, baseline *money.Money) (float64, error) {
	if !current.SameCurrency(baseline) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, current.Currency().Code, baseline.Currency().Code)
	}
	if !baseline.IsPositive() {
		return 0, ErrNonPositiveBaseline
	}
	if current.IsNegative() {
		return 0, ErrNegativeRevenue
	}

	// Both amounts are in minor units of the same currency.
	r := decimal.NewFromInt(current.Amount()).
		DivRound(decimal.NewFromInt(baseline.Amount()), RatioPlaces)
	f, _ := r.Float64()
	return f, nil
}

// RatioFromAmounts is Ratio for plain numbers in one currency.
func RatioFromAmounts(current, baseline float64, code string) (float64, error) {
	cur, err := Amount(current, code)
	if err != nil {
		return 0, err
	}
	base, err := Amount(baseline, code)
	if err != nil {
		return 0, err
	}
	return Ratio(cur, base)
}

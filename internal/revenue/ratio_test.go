// ABOUTME: Tests for the in-memory revenue ratio helper.
// ABOUTME: Covers rounding, currency checks, and baseline guards.
package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioFromAmounts(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		baseline float64
		code     string
		want     float64
	}{
		{"flat", 10000, 10000, "USD", 1.0},
		{"five percent up", 10500, 10000, "USD", 1.05},
		{"rounded to four places", 10000, 30000, "EUR", 0.3333},
		{"lowercase code", 12000, 10000, "usd", 1.2},
		{"zero current", 0, 10000, "GBP", 0},
		{"zero-decimal currency", 150000, 100000, "JPY", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RatioFromAmounts(tt.current, tt.baseline, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatioErrors(t *testing.T) {
	_, err := RatioFromAmounts(100, 0, "USD")
	assert.ErrorIs(t, err, ErrNonPositiveBaseline)

	_, err = RatioFromAmounts(100, -50, "USD")
	assert.ErrorIs(t, err, ErrNonPositiveBaseline)

	_, err = RatioFromAmounts(-1, 100, "USD")
	assert.ErrorIs(t, err, ErrNegativeRevenue)

	_, err = RatioFromAmounts(100, 100, "XYZ1")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestRatioCurrencyMismatch(t *testing.T) {
	cur, err := Amount(100, "USD")
	require.NoError(t, err)
	base, err := Amount(100, "EUR")
	require.NoError(t, err)

	_, err = Ratio(cur, base)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

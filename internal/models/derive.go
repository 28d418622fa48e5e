// ABOUTME: Derivation of the four weekly indices from raw input and the baseline.
// ABOUTME: Pure functions; zero-hour denominators are reported as DerivationError.
package models

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator means a ratio could not be formed because one of its
// denominators was zero.
var ErrZeroDenominator = errors.New("zero denominator")

// DerivationError reports which input made a derived field undefined.
type DerivationError struct {
	Field string
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derive metrics: %s: %v", e.Field, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// AutomationIndex is the share of hours that were automated, in percent.
// Weeks without positive hours score 0.
func AutomationIndex(totalHours, automatedHours float64) float64 {
	if totalHours > 0 {
		return automatedHours / totalHours * 100
	}
	return 0
}

// Derive computes the derived metrics for raw against baseline.
//
// When baseline is nil or raw is the baseline week itself, the comparison
// metrics are fixed: no time saved and both multiples at exactly 1.0.
// Otherwise a zero total_hours in either week, or a zero baseline revenue
// ratio or client count, returns a *DerivationError.
func Derive(raw RawWeeklyInput, baseline *Baseline) (DerivedMetrics, error) {
	d := DerivedMetrics{
		AutomationIndex: AutomationIndex(raw.TotalHours, raw.AutomatedHours),
	}

	if baseline == nil || raw.WeekNumber == BaselineWeek {
		d.TimeSavedVsBaseline = 0
		d.RevenueEfficiencyMultiple = 1.0
		d.ClientCapacityScore = 1.0
		return d, nil
	}

	switch {
	case raw.TotalHours == 0:
		return DerivedMetrics{}, &DerivationError{Field: "total_hours", Err: ErrZeroDenominator}
	case baseline.TotalHours == 0:
		return DerivedMetrics{}, &DerivationError{Field: "baseline total_hours", Err: ErrZeroDenominator}
	case baseline.RevenueRatio == 0:
		return DerivedMetrics{}, &DerivationError{Field: "baseline revenue_ratio", Err: ErrZeroDenominator}
	case baseline.ActiveClients == 0:
		return DerivedMetrics{}, &DerivationError{Field: "baseline active_clients", Err: ErrZeroDenominator}
	}

	d.TimeSavedVsBaseline = baseline.TotalHours - raw.TotalHours
	d.RevenueEfficiencyMultiple = (raw.RevenueRatio / raw.TotalHours) /
		(baseline.RevenueRatio / baseline.TotalHours)
	d.ClientCapacityScore = (float64(raw.ActiveClients) / raw.TotalHours) /
		(float64(baseline.ActiveClients) / baseline.TotalHours)

	return d, nil
}

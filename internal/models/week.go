// ABOUTME: WeeklyRecord model, raw weekly input, and the week-1 baseline value.
// ABOUTME: One record per week number holds raw inputs plus persisted derived indices.
package models

import (
	"errors"
	"fmt"
	"time"
)

// BaselineWeek is the week whose record anchors every efficiency ratio.
const BaselineWeek = 1

// DateLayout is the on-disk format of a submission date.
const DateLayout = "2006-01-02"

// ErrInvalidWeek is returned for week numbers below 1.
var ErrInvalidWeek = errors.New("week number must be positive")

// RawWeeklyInput is what the user reports for a single week.
// Revenue is only ever expressed as a ratio to the week-1 revenue.
type RawWeeklyInput struct {
	WeekNumber          int
	TotalHours          float64
	AutomatedHours      float64
	ActiveClients       int
	RevenueRatio        float64
	RecurringRevenuePct float64
	AutomatedThisWeek   string
	BiggestBottleneck   string
}

// Validate rejects inputs that cannot be keyed. Range problems are not
// errors; see Warnings.
func (r RawWeeklyInput) Validate() error {
	if r.WeekNumber < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWeek, r.WeekNumber)
	}
	return nil
}

// Warnings lists suspicious values. They are reported to the user but the
// values are stored exactly as given.
func (r RawWeeklyInput) Warnings() []string {
	var warnings []string
	if r.TotalHours < 0 {
		warnings = append(warnings, fmt.Sprintf("total hours is negative (%.1f)", r.TotalHours))
	}
	if r.AutomatedHours < 0 {
		warnings = append(warnings, fmt.Sprintf("automated hours is negative (%.1f)", r.AutomatedHours))
	}
	if r.AutomatedHours > r.TotalHours {
		warnings = append(warnings, fmt.Sprintf("automated hours (%.1f) exceed total hours (%.1f); manual hours will be negative",
			r.AutomatedHours, r.TotalHours))
	}
	if r.ActiveClients < 0 {
		warnings = append(warnings, fmt.Sprintf("active clients is negative (%d)", r.ActiveClients))
	}
	if r.RevenueRatio <= 0 {
		warnings = append(warnings, fmt.Sprintf("revenue ratio should be positive (%.2f)", r.RevenueRatio))
	}
	if r.RecurringRevenuePct < 0 || r.RecurringRevenuePct > 100 {
		warnings = append(warnings, fmt.Sprintf("recurring revenue %% is outside 0-100 (%.1f)", r.RecurringRevenuePct))
	}
	if r.WeekNumber == BaselineWeek && r.RevenueRatio != 1.0 {
		warnings = append(warnings, fmt.Sprintf("week 1 is the baseline; revenue ratio is conventionally 1.0 (got %.2f)", r.RevenueRatio))
	}
	return warnings
}

// DerivedMetrics are the indices computed from a week's raw input and the baseline.
type DerivedMetrics struct {
	AutomationIndex           float64
	TimeSavedVsBaseline       float64
	RevenueEfficiencyMultiple float64
	ClientCapacityScore       float64
}

// WeeklyRecord is the stored row for one week.
type WeeklyRecord struct {
	WeekNumber          int       `json:"week_number" yaml:"week_number"`
	SubmissionDate      time.Time `json:"submission_date" yaml:"submission_date"`
	TotalHours          float64   `json:"total_hours" yaml:"total_hours"`
	AutomatedHours      float64   `json:"automated_hours" yaml:"automated_hours"`
	ManualHours         float64   `json:"manual_hours" yaml:"manual_hours"`
	ActiveClients       int       `json:"active_clients" yaml:"active_clients"`
	RevenueRatio        float64   `json:"revenue_ratio" yaml:"revenue_ratio"`
	RecurringRevenuePct float64   `json:"recurring_revenue_pct" yaml:"recurring_revenue_pct"`
	AutomatedThisWeek   string    `json:"automated_this_week" yaml:"automated_this_week"`
	BiggestBottleneck   string    `json:"biggest_bottleneck" yaml:"biggest_bottleneck"`

	AutomationIndex           float64 `json:"automation_index" yaml:"automation_index"`
	TimeSavedVsBaseline       float64 `json:"time_saved_vs_baseline" yaml:"time_saved_vs_baseline"`
	RevenueEfficiencyMultiple float64 `json:"revenue_efficiency_multiple" yaml:"revenue_efficiency_multiple"`
	ClientCapacityScore       float64 `json:"client_capacity_score" yaml:"client_capacity_score"`
}

// NewWeeklyRecord assembles a full row. The submission date keeps only the
// calendar day of submittedAt.
func NewWeeklyRecord(raw RawWeeklyInput, derived DerivedMetrics, submittedAt time.Time) *WeeklyRecord {
	r := &WeeklyRecord{
		WeekNumber:          raw.WeekNumber,
		SubmissionDate:      DateOf(submittedAt),
		TotalHours:          raw.TotalHours,
		AutomatedHours:      raw.AutomatedHours,
		ManualHours:         raw.TotalHours - raw.AutomatedHours,
		ActiveClients:       raw.ActiveClients,
		RevenueRatio:        raw.RevenueRatio,
		RecurringRevenuePct: raw.RecurringRevenuePct,
		AutomatedThisWeek:   raw.AutomatedThisWeek,
		BiggestBottleneck:   raw.BiggestBottleneck,
	}
	r.Apply(derived)
	return r
}

// Apply overwrites the derived fields of the record.
func (r *WeeklyRecord) Apply(d DerivedMetrics) {
	r.AutomationIndex = d.AutomationIndex
	r.TimeSavedVsBaseline = d.TimeSavedVsBaseline
	r.RevenueEfficiencyMultiple = d.RevenueEfficiencyMultiple
	r.ClientCapacityScore = d.ClientCapacityScore
}

// Raw returns the user-supplied part of the record.
func (r *WeeklyRecord) Raw() RawWeeklyInput {
	return RawWeeklyInput{
		WeekNumber:          r.WeekNumber,
		TotalHours:          r.TotalHours,
		AutomatedHours:      r.AutomatedHours,
		ActiveClients:       r.ActiveClients,
		RevenueRatio:        r.RevenueRatio,
		RecurringRevenuePct: r.RecurringRevenuePct,
		AutomatedThisWeek:   r.AutomatedThisWeek,
		BiggestBottleneck:   r.BiggestBottleneck,
	}
}

// Derived returns the stored derived fields.
func (r *WeeklyRecord) Derived() DerivedMetrics {
	return DerivedMetrics{
		AutomationIndex:           r.AutomationIndex,
		TimeSavedVsBaseline:       r.TimeSavedVsBaseline,
		RevenueEfficiencyMultiple: r.RevenueEfficiencyMultiple,
		ClientCapacityScore:       r.ClientCapacityScore,
	}
}

// IsBaseline reports whether this record is the week-1 record.
func (r *WeeklyRecord) IsBaseline() bool {
	return r.WeekNumber == BaselineWeek
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Baseline is the reference point derived metrics are measured against.
// It is built once from the stored week-1 record and passed by value.
type Baseline struct {
	TotalHours    float64 `json:"total_hours"`
	ActiveClients int     `json:"active_clients"`
	RevenueRatio  float64 `json:"revenue_ratio"`
}

// BaselineFrom builds a Baseline from a stored record. A nil record yields nil.
func BaselineFrom(r *WeeklyRecord) *Baseline {
	if r == nil {
		return nil
	}
	return &Baseline{
		TotalHours:    r.TotalHours,
		ActiveClients: r.ActiveClients,
		RevenueRatio:  r.RevenueRatio,
	}
}

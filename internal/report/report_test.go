// ABOUTME: Tests for summaries, tables, charts, and the narrative report.
// ABOUTME: Uses the three-week example journey derived through models.Derive.
package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/scorecard/internal/models"
)

func exampleWeeks(t *testing.T) []*models.WeeklyRecord {
	t.Helper()

	inputs := []models.RawWeeklyInput{
		{WeekNumber: 1, TotalHours: 55, AutomatedHours: 8, ActiveClients: 3, RevenueRatio: 1.0, RecurringRevenuePct: 10,
			AutomatedThisWeek: "Email filtering", BiggestBottleneck: "Client onboarding"},
		{WeekNumber: 2, TotalHours: 52, AutomatedHours: 15, ActiveClients: 3, RevenueRatio: 1.05, RecurringRevenuePct: 10,
			AutomatedThisWeek: "Invoice generation", BiggestBottleneck: "Proposal writing"},
		{WeekNumber: 3, TotalHours: 48, AutomatedHours: 22, ActiveClients: 4, RevenueRatio: 1.15, RecurringRevenuePct: 15,
			AutomatedThisWeek: "Onboarding workflow", BiggestBottleneck: "Content creation"},
	}

	start := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	var baseline *models.Baseline
	var weeks []*models.WeeklyRecord
	for i, raw := range inputs {
		d, err := models.Derive(raw, baseline)
		require.NoError(t, err)
		rec := models.NewWeeklyRecord(raw, d, start.AddDate(0, 0, 7*i))
		if rec.IsBaseline() {
			baseline = models.BaselineFrom(rec)
		}
		weeks = append(weeks, rec)
	}
	return weeks
}

func TestBuildEmpty(t *testing.T) {
	assert.Nil(t, Build(nil, DefaultTargets()))
}

func TestBuildSummary(t *testing.T) {
	s := Build(exampleWeeks(t), Targets{})
	require.NotNil(t, s)

	assert.Equal(t, 1, s.First.WeekNumber)
	assert.Equal(t, 2, s.Previous.WeekNumber)
	assert.Equal(t, 3, s.Latest.WeekNumber)
	assert.Equal(t, DefaultTargets(), s.Targets)
	assert.InDelta(t, 7.0/55*100, s.TimeReductionPct, 1e-9)
	assert.InDelta(t, 45.8333-14.5454, s.AutomationChange, 1e-3)
	require.Len(t, s.Requirements, 4)
	assert.Equal(t, 4, s.Remaining())
	assert.False(t, s.Ready())
}

func TestBuildSingleWeek(t *testing.T) {
	weeks := exampleWeeks(t)[:1]
	s := Build(weeks, DefaultTargets())
	require.NotNil(t, s)

	assert.Nil(t, s.Previous)
	assert.Same(t, s.First, s.Latest)
	assert.Equal(t, 0.0, s.TimeReductionPct)
}

func TestGraduationReady(t *testing.T) {
	first := &models.WeeklyRecord{WeekNumber: 1, TotalHours: 55}
	last := &models.WeeklyRecord{
		WeekNumber:          12,
		TotalHours:          25,
		AutomationIndex:     75,
		TimeSavedVsBaseline: 30,
		RecurringRevenuePct: 60,
	}

	s := Build([]*models.WeeklyRecord{first, last}, DefaultTargets())
	require.NotNil(t, s)
	assert.True(t, s.Ready())
	assert.Contains(t, Markdown(s), "ready to graduate")
}

func TestRequirementNames(t *testing.T) {
	s := Build(exampleWeeks(t), DefaultTargets())
	names := make([]string, 0, len(s.Requirements))
	for _, r := range s.Requirements {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"Automation Index ≥ 70%",
		"Time Liberation ≥ 50%",
		"Subscription Revenue ≥ 50%",
		"Complete 12 weeks",
	}, names)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(Build(exampleWeeks(t), DefaultTargets()))

	for _, want := range []string{
		"# Transformation Report",
		"**Current week:** 3/12",
		"**Journey started:** 2025-03-07",
		"**Latest update:** 2025-03-21",
		"- Week 1: 14.5%",
		"- Week 3: 45.8%",
		"- Change: +31.3% ✅",
		"- Target: 80% (34.2% to go)",
		"- Hours saved per week: 7.0 hours",
		"- Time reduction: 12.7%",
		"- Status: ✅ Growing!",
		"- ⬜ Automation Index ≥ 70%",
		"- ⬜ Complete 12 weeks",
		"Keep going! 4 requirement(s) remaining.",
		"### Week 2",
		"- Automated: Onboarding workflow",
		"- Bottleneck: Content creation",
	} {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "### Week 1")
	assert.NotContains(t, md, "❌")
}

func TestMarkdownNoData(t *testing.T) {
	assert.Equal(t, NoData+"\n", Markdown(nil))
}

func TestRender(t *testing.T) {
	md := Markdown(Build(exampleWeeks(t), DefaultTargets()))

	out, err := Render(md, RenderOptions{Style: "notty", Width: 100})
	require.NoError(t, err)
	assert.Contains(t, out, "Transformation Report")
	assert.Contains(t, out, "Graduation Readiness")
}

func TestProgressRows(t *testing.T) {
	rows := ProgressRows(exampleWeeks(t))
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"1", "14.5", "0.0", "1.00", "1.00", "10.0"}, rows[0])
	assert.Equal(t, []string{"2", "28.8", "3.0", "1.11", "1.06", "10.0"}, rows[1])
}

func TestProgressTable(t *testing.T) {
	out := ProgressTable(exampleWeeks(t))

	for _, h := range ProgressHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "45.8")
	assert.Contains(t, out, "Week 3 Summary:")
	assert.Contains(t, out, "Biggest bottleneck: Content creation")
}

func TestProgressTableEmpty(t *testing.T) {
	assert.Contains(t, ProgressTable(nil), NoData)
}

func TestCharts(t *testing.T) {
	out := Charts(exampleWeeks(t), DefaultTargets(), 20)

	assert.Contains(t, out, "Automation Index (target 80%)")
	assert.Contains(t, out, "Time Liberation")
	assert.Contains(t, out, "Revenue & Client Efficiency")
	assert.Contains(t, out, "Subscription Transition (target 50%)")
	assert.Contains(t, out, "Weekly Hours Breakdown")
	assert.Contains(t, out, "W03 cli")
	assert.Contains(t, out, "22.0h auto / 26.0h manual")
}

func TestChartsEmpty(t *testing.T) {
	assert.Contains(t, Charts(nil, DefaultTargets(), 0), NoData)
}

func TestCells(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		scale float64
		want  int
	}{
		{"half", 50, 100, 20},
		{"full", 100, 100, 40},
		{"over scale", 150, 100, 40},
		{"negative", -5, 100, 0},
		{"nan", math.NaN(), 100, 0},
		{"zero scale", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cells(tt.v, tt.scale, 40))
		})
	}
}

func TestRenderPanelNegativeValue(t *testing.T) {
	p := Panel{Title: "Saved", Unit: "h", Bars: []Bar{{Label: "W02", Value: -4}}}
	out := RenderPanel(p, 10)

	assert.Contains(t, out, "-4.0h")
	assert.NotContains(t, out, string(barFull))
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{28.846153, 1, "28.8"},
		{2.25, 1, "2.3"},
		{1.110577, 2, "1.11"},
		{0, 1, "0.0"},
		{math.NaN(), 1, "n/a"},
		{math.Inf(1), 2, "n/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.v, tt.places))
	}

	assert.Equal(t, "+3.0", Signed(3, 1))
	assert.Equal(t, "-2.5", Signed(-2.5, 1))
}

func TestTargetsWithDefaults(t *testing.T) {
	got := Targets{Automation: 90}.WithDefaults()
	assert.Equal(t, 90.0, got.Automation)
	assert.Equal(t, 12, got.ProgramWeeks)
	assert.Equal(t, 70.0, got.GraduationAutomation)
}

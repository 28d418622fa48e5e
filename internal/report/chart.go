// ABOUTME: Terminal bar charts for the weekly dashboard panels.
// ABOUTME: One bar per week, scaled to the panel maximum, with an optional target marker.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/scorecard/internal/models"
)

// DefaultChartWidth is the bar width used when the caller passes zero.
const DefaultChartWidth = 40

const (
	barFull   = '█'
	barEmpty  = '░'
	barManual = '▒'
	barTarget = '┃'
)

// Bar is one labelled value in a panel.
type Bar struct {
	Label string
	Value float64
}

// Panel is a titled set of bars sharing one scale.
type Panel struct {
	Title string
	Unit  string
	Bars  []Bar
	// Target draws a marker at this value when positive.
	Target float64
	Color  lipgloss.Color
}

// Charts renders the four dashboard panels and the hours breakdown.
func Charts(weeks []*models.WeeklyRecord, targets Targets, width int) string {
	if len(weeks) == 0 {
		return NoData + "\n"
	}
	if width <= 0 {
		width = DefaultChartWidth
	}
	targets = targets.WithDefaults()

	panels := DashboardPanels(weeks, targets)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Transformation Dashboard"))
	sb.WriteString("\n\n")
	for _, p := range panels {
		sb.WriteString(RenderPanel(p, width))
		sb.WriteString("\n")
	}
	sb.WriteString(HoursBreakdown(weeks, width))
	return sb.String()
}

// DashboardPanels builds the automation, time, efficiency, and recurring revenue panels.
func DashboardPanels(weeks []*models.WeeklyRecord, targets Targets) []Panel {
	automation := Panel{
		Title:  fmt.Sprintf("Automation Index (target %s%%)", Fixed(targets.Automation, 0)),
		Unit:   "%",
		Target: targets.Automation,
		Color:  colorSecondary,
	}
	saved := Panel{
		Title: "Time Liberation (hours saved vs week 1)",
		Unit:  "h",
		Color: colorError,
	}
	efficiency := Panel{
		Title:  "Revenue & Client Efficiency (baseline 1.0x)",
		Unit:   "x",
		Target: 1.0,
		Color:  colorTeal,
	}
	recurring := Panel{
		Title:  fmt.Sprintf("Subscription Transition (target %s%%)", Fixed(targets.Recurring, 0)),
		Unit:   "%",
		Target: targets.Recurring,
		Color:  colorYellow,
	}

	for _, w := range weeks {
		label := weekLabel(w.WeekNumber)
		automation.Bars = append(automation.Bars, Bar{Label: label, Value: w.AutomationIndex})
		saved.Bars = append(saved.Bars, Bar{Label: label, Value: w.TimeSavedVsBaseline})
		efficiency.Bars = append(efficiency.Bars,
			Bar{Label: label + " rev", Value: w.RevenueEfficiencyMultiple},
			Bar{Label: label + " cli", Value: w.ClientCapacityScore},
		)
		recurring.Bars = append(recurring.Bars, Bar{Label: label, Value: w.RecurringRevenuePct})
	}

	return []Panel{automation, saved, efficiency, recurring}
}

// RenderPanel draws p with bars width cells wide. Negative values draw an
// empty bar but still print their value.
func RenderPanel(p Panel, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}

	scale := p.Target
	for _, b := range p.Bars {
		if b.Value > scale {
			scale = b.Value
		}
	}
	if scale <= 0 {
		scale = 1
	}

	labelWidth := 0
	for _, b := range p.Bars {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(p.Color)
	marker := -1
	if p.Target > 0 {
		marker = cells(p.Target, scale, width)
		if marker >= width {
			marker = width - 1
		}
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	sb.WriteString("\n")
	for _, b := range p.Bars {
		filled := cells(b.Value, scale, width)

		var bar strings.Builder
		for i := 0; i < width; i++ {
			switch {
			case i == marker:
				bar.WriteString(successStyle.Render(string(barTarget)))
			case i < filled:
				bar.WriteString(barStyle.Render(string(barFull)))
			default:
				bar.WriteString(mutedStyle.Render(string(barEmpty)))
			}
		}

		sb.WriteString(fmt.Sprintf("  %-*s %s %s%s\n", labelWidth, b.Label, bar.String(), Fixed(b.Value, decimals(p.Unit)), p.Unit))
	}
	return sb.String()
}

// HoursBreakdown draws automated and manual hours stacked in one bar per week.
func HoursBreakdown(weeks []*models.WeeklyRecord, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}

	scale := 0.0
	for _, w := range weeks {
		total := math.Max(w.AutomatedHours, 0) + math.Max(w.ManualHours, 0)
		if total > scale {
			scale = total
		}
	}
	if scale <= 0 {
		scale = 1
	}

	autoStyle := lipgloss.NewStyle().Foreground(colorSecondary)
	manualStyle := lipgloss.NewStyle().Foreground(colorError)

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Weekly Hours Breakdown: automated vs manual"))
	sb.WriteString("\n")
	for _, w := range weeks {
		auto := cells(w.AutomatedHours, scale, width)
		manual := cells(math.Max(w.AutomatedHours, 0)+w.ManualHours, scale, width) - auto
		if manual < 0 {
			manual = 0
		}

		bar := autoStyle.Render(strings.Repeat(string(barFull), auto)) +
			manualStyle.Render(strings.Repeat(string(barManual), manual)) +
			mutedStyle.Render(strings.Repeat(string(barEmpty), width-auto-manual))

		sb.WriteString(fmt.Sprintf("  %s %s %sh auto / %sh manual\n",
			weekLabel(w.WeekNumber), bar, Fixed(w.AutomatedHours, 1), Fixed(w.ManualHours, 1)))
	}
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %c automated  %c manual", barFull, barManual)))
	sb.WriteString("\n")
	return sb.String()
}

// cells maps v onto [0, width] cells of a bar whose full length is scale.
func cells(v, scale float64, width int) int {
	if v <= 0 || math.IsNaN(v) || scale <= 0 {
		return 0
	}
	n := int(math.Round(v / scale * float64(width)))
	if n > width {
		return width
	}
	return n
}

func decimals(unit string) int32 {
	if unit == "x" {
		return 2
	}
	return 1
}

func weekLabel(n int) string {
	return fmt.Sprintf("W%02d", n)
}

// ABOUTME: Progress table of every stored week with the latest week's notes.
// ABOUTME: Rendered with lipgloss/table; numbers rounded for display only.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harperreed/scorecard/internal/models"
)

// ProgressHeaders are the columns of the progress table.
var ProgressHeaders = []string{"Week", "Automation %", "Hours Saved", "Rev Efficiency", "Client Capacity", "Recurring %"}

// ProgressRows returns the table cells for weeks, one row per week.
func ProgressRows(weeks []*models.WeeklyRecord) [][]string {
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, []string{
			strconv.Itoa(w.WeekNumber),
			Fixed(w.AutomationIndex, 1),
			Fixed(w.TimeSavedVsBaseline, 1),
			Fixed(w.RevenueEfficiencyMultiple, 2),
			Fixed(w.ClientCapacityScore, 2),
			Fixed(w.RecurringRevenuePct, 1),
		})
	}
	return rows
}

// ProgressTable renders the progress table followed by the latest week's
// summary. An empty list renders NoData.
func ProgressTable(weeks []*models.WeeklyRecord) string {
	if len(weeks) == 0 {
		return NoData + "\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(ProgressHeaders...).
		Rows(ProgressRows(weeks)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(iconChart + " YOUR TRANSFORMATION PROGRESS"))
	sb.WriteString("\n")
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")

	latest := weeks[len(weeks)-1]
	sb.WriteString(fmt.Sprintf("%s Week %d Summary:\n", iconWeek, latest.WeekNumber))
	sb.WriteString(fmt.Sprintf("   %s Automated this week: %s\n", iconRobot, orDash(latest.AutomatedThisWeek)))
	sb.WriteString(fmt.Sprintf("   %s Biggest bottleneck: %s\n", iconBlocked, orDash(latest.BiggestBottleneck)))

	return sb.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

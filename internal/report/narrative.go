// ABOUTME: Narrative transformation report built as Markdown.
// ABOUTME: Rendered for the terminal with glamour; the raw Markdown serves MCP clients.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/harperreed/scorecard/internal/models"
)

// Markdown builds the transformation report for s. A nil summary yields NoData.
func Markdown(s *Summary) string {
	if s == nil {
		return NoData + "\n"
	}

	var sb strings.Builder
	t := s.Targets

	sb.WriteString("# Transformation Report\n\n")
	sb.WriteString(fmt.Sprintf("- **Current week:** %d/%d\n", s.Latest.WeekNumber, t.ProgramWeeks))
	sb.WriteString(fmt.Sprintf("- **Journey started:** %s\n", s.First.SubmissionDate.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("- **Latest update:** %s\n\n", s.Latest.SubmissionDate.Format(models.DateLayout)))

	sb.WriteString("## Key Metrics\n\n")

	ai := s.Latest.AutomationIndex
	sb.WriteString("### Automation Index\n\n")
	sb.WriteString(fmt.Sprintf("- Week %d: %s%%\n", s.First.WeekNumber, Fixed(s.First.AutomationIndex, 1)))
	sb.WriteString(fmt.Sprintf("- Week %d: %s%%\n", s.Latest.WeekNumber, Fixed(ai, 1)))
	sb.WriteString(fmt.Sprintf("- Change: %s%% %s\n", Signed(s.AutomationChange, 1), trend(s.AutomationChange > 0)))
	sb.WriteString(fmt.Sprintf("- Target: %s%% %s\n\n", Fixed(t.Automation, 0), progress(ai, t.Automation)))

	sb.WriteString("### Time Liberation\n\n")
	sb.WriteString(fmt.Sprintf("- Hours saved per week: %s hours\n", Fixed(s.Latest.TimeSavedVsBaseline, 1)))
	sb.WriteString(fmt.Sprintf("- Time reduction: %s%%\n", Fixed(s.TimeReductionPct, 1)))
	sb.WriteString(fmt.Sprintf("- Target: %s%% reduction %s\n\n", Fixed(t.TimeReduction, 0), progress(s.TimeReductionPct, t.TimeReduction)))

	rem := s.Latest.RevenueEfficiencyMultiple
	sb.WriteString("### Revenue Efficiency Multiple\n\n")
	sb.WriteString(fmt.Sprintf("- Current: %sx baseline\n", Fixed(rem, 2)))
	if rem > 1.0 {
		sb.WriteString("- Status: ✅ Growing!\n\n")
	} else {
		sb.WriteString("- Status: ⚠️ Below baseline\n\n")
	}

	ccs := s.Latest.ClientCapacityScore
	sb.WriteString("### Client Capacity Score\n\n")
	sb.WriteString(fmt.Sprintf("- Current: %sx baseline\n", Fixed(ccs, 2)))
	sb.WriteString(fmt.Sprintf("- You can now serve %sx more clients per hour worked\n\n", Fixed(ccs, 1)))

	sti := s.Latest.RecurringRevenuePct
	sb.WriteString("### Subscription Transition\n\n")
	sb.WriteString(fmt.Sprintf("- Recurring revenue: %s%%\n", Fixed(sti, 1)))
	sb.WriteString(fmt.Sprintf("- Target: %s%% %s\n\n", Fixed(t.Recurring, 0), progress(sti, t.Recurring)))

	sb.WriteString("## Graduation Readiness\n\n")
	for _, r := range s.Requirements {
		sb.WriteString(fmt.Sprintf("- %s %s\n", checkbox(r.Met), r.Name))
	}
	sb.WriteString("\n")
	if s.Ready() {
		sb.WriteString("🎉 **Congratulations! You're ready to graduate!**\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("💪 Keep going! %d requirement(s) remaining.\n\n", s.Remaining()))
	}

	sb.WriteString("## Recent Progress\n\n")
	for _, w := range []*models.WeeklyRecord{s.Previous, s.Latest} {
		if w == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("### Week %d\n\n", w.WeekNumber))
		sb.WriteString(fmt.Sprintf("- Automated: %s\n", orDash(w.AutomatedThisWeek)))
		sb.WriteString(fmt.Sprintf("- Bottleneck: %s\n\n", orDash(w.BiggestBottleneck)))
	}

	return sb.String()
}

func trend(up bool) string {
	if up {
		return "✅"
	}
	return "⚠️"
}

func checkbox(met bool) string {
	if met {
		return "✅"
	}
	return "⬜"
}

func progress(current, target float64) string {
	if current >= target {
		return "✅ ACHIEVED!"
	}
	return fmt.Sprintf("(%s%% to go)", Fixed(target-current, 1))
}

// RenderOptions controls terminal rendering of Markdown.
type RenderOptions struct {
	// Style is a glamour standard style name such as "dark" or "notty".
	// Empty picks one from the terminal.
	Style string
	Width int
}

// Render formats md for the terminal.
func Render(md string, opts RenderOptions) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

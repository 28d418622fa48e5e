// ABOUTME: Report summary computed from the ordered list of stored weeks.
// ABOUTME: Holds first, previous, and latest week plus graduation requirements.
package report

import (
	"fmt"

	"github.com/harperreed/scorecard/internal/models"
)

// NoData is shown instead of any report when nothing has been submitted.
const NoData = "No data yet. Submit your first week's metrics!"

// Requirement is one graduation criterion.
type Requirement struct {
	Name string
	Met  bool
}

// Summary is the read-only view every report is rendered from.
type Summary struct {
	Weeks    []*models.WeeklyRecord
	First    *models.WeeklyRecord
	Previous *models.WeeklyRecord
	Latest   *models.WeeklyRecord
	Targets  Targets

	AutomationChange float64
	// TimeReductionPct is the latest hours saved as a share of the first
	// stored week's total hours.
	TimeReductionPct float64
	Requirements     []Requirement
}

// Build summarizes weeks, which must be in ascending week order. It returns
// nil when weeks is empty.
func Build(weeks []*models.WeeklyRecord, targets Targets) *Summary {
	if len(weeks) == 0 {
		return nil
	}
	targets = targets.WithDefaults()

	s := &Summary{
		Weeks:   weeks,
		First:   weeks[0],
		Latest:  weeks[len(weeks)-1],
		Targets: targets,
	}
	if len(weeks) >= 2 {
		s.Previous = weeks[len(weeks)-2]
	}

	s.AutomationChange = s.Latest.AutomationIndex - s.First.AutomationIndex
	if s.First.TotalHours > 0 {
		s.TimeReductionPct = s.Latest.TimeSavedVsBaseline / s.First.TotalHours * 100
	}

	s.Requirements = []Requirement{
		{
			Name: fmt.Sprintf("Automation Index ≥ %s%%", Fixed(targets.GraduationAutomation, 0)),
			Met:  s.Latest.AutomationIndex >= targets.GraduationAutomation,
		},
		{
			Name: fmt.Sprintf("Time Liberation ≥ %s%%", Fixed(targets.TimeReduction, 0)),
			Met:  s.TimeReductionPct >= targets.TimeReduction,
		},
		{
			Name: fmt.Sprintf("Subscription Revenue ≥ %s%%", Fixed(targets.Recurring, 0)),
			Met:  s.Latest.RecurringRevenuePct >= targets.Recurring,
		},
		{
			Name: fmt.Sprintf("Complete %d weeks", targets.ProgramWeeks),
			Met:  s.Latest.WeekNumber >= targets.ProgramWeeks,
		},
	}

	return s
}

// Remaining counts unmet graduation requirements.
func (s *Summary) Remaining() int {
	n := 0
	for _, r := range s.Requirements {
		if !r.Met {
			n++
		}
	}
	return n
}

// Ready reports whether every graduation requirement is met.
func (s *Summary) Ready() bool {
	return s.Remaining() == 0
}

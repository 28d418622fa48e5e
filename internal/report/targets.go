// ABOUTME: Progress targets the report measures weeks against.
// ABOUTME: Defaults follow the twelve-week transformation program.
package report

// Targets are the thresholds shown in charts and the narrative report.
type Targets struct {
	Automation           float64 `json:"automation"`
	TimeReduction        float64 `json:"time_reduction"`
	Recurring            float64 `json:"recurring"`
	ProgramWeeks         int     `json:"program_weeks"`
	GraduationAutomation float64 `json:"graduation_automation"`
}

// DefaultTargets returns the standard program targets.
func DefaultTargets() Targets {
	return Targets{
		Automation:           80,
		TimeReduction:        50,
		Recurring:            50,
		ProgramWeeks:         12,
		GraduationAutomation: 70,
	}
}

// WithDefaults fills zero fields from DefaultTargets.
func (t Targets) WithDefaults() Targets {
	d := DefaultTargets()
	if t.Automation == 0 {
		t.Automation = d.Automation
	}
	if t.TimeReduction == 0 {
		t.TimeReduction = d.TimeReduction
	}
	if t.Recurring == 0 {
		t.Recurring = d.Recurring
	}
	if t.ProgramWeeks == 0 {
		t.ProgramWeeks = d.ProgramWeeks
	}
	if t.GraduationAutomation == 0 {
		t.GraduationAutomation = d.GraduationAutomation
	}
	return t
}

// ABOUTME: MCP tool implementations for the weekly scorecard.
// ABOUTME: Submits weeks and reads weeks, the baseline, and the narrative report.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/report"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "submit_week",
		Description: "Record one week's hours, clients, and revenue ratio. Re-submitting a week replaces it.",
	}, s.handleSubmitWeek)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_week",
		Description: "Get the stored record for one week, including derived indices",
	}, s.handleGetWeek)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_weeks",
		Description: "List every stored week in ascending order",
	}, s.handleListWeeks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_baseline",
		Description: "Get the week 1 baseline all ratios are measured against",
	}, s.handleGetBaseline)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_report",
		Description: "Get the transformation report with graduation readiness as Markdown",
	}, s.handleGetReport)
}

// Tool input/output types

type submitWeekInput struct {
	WeekNumber          int     `json:"week_number" jsonschema:"Week number; week 1 is the baseline"`
	TotalHours          float64 `json:"total_hours" jsonschema:"Total hours worked this week"`
	AutomatedHours      float64 `json:"automated_hours" jsonschema:"Hours of work handled by automation"`
	ActiveClients       int     `json:"active_clients" jsonschema:"Number of active clients"`
	RevenueRatio        float64 `json:"revenue_ratio" jsonschema:"Revenue relative to week 1 (week 1 is 1.0)"`
	RecurringRevenuePct float64 `json:"recurring_revenue_pct" jsonschema:"Share of revenue that is recurring, 0 to 100"`
	AutomatedThisWeek   string  `json:"automated_this_week,omitempty" jsonschema:"What was automated this week"`
	BiggestBottleneck   string  `json:"biggest_bottleneck,omitempty" jsonschema:"Biggest bottleneck this week"`
}

// weekView is a WeeklyRecord with the date as a plain calendar day.
type weekView struct {
	WeekNumber                int     `json:"week_number"`
	SubmissionDate            string  `json:"submission_date"`
	TotalHours                float64 `json:"total_hours"`
	AutomatedHours            float64 `json:"automated_hours"`
	ManualHours               float64 `json:"manual_hours"`
	ActiveClients             int     `json:"active_clients"`
	RevenueRatio              float64 `json:"revenue_ratio"`
	RecurringRevenuePct       float64 `json:"recurring_revenue_pct"`
	AutomatedThisWeek         string  `json:"automated_this_week,omitempty"`
	BiggestBottleneck         string  `json:"biggest_bottleneck,omitempty"`
	AutomationIndex           float64 `json:"automation_index"`
	TimeSavedVsBaseline       float64 `json:"time_saved_vs_baseline"`
	RevenueEfficiencyMultiple float64 `json:"revenue_efficiency_multiple"`
	ClientCapacityScore       float64 `json:"client_capacity_score"`
}

func toWeekView(r *models.WeeklyRecord) weekView {
	return weekView{
		WeekNumber:                r.WeekNumber,
		SubmissionDate:            r.SubmissionDate.Format(models.DateLayout),
		TotalHours:                r.TotalHours,
		AutomatedHours:            r.AutomatedHours,
		ManualHours:               r.ManualHours,
		ActiveClients:             r.ActiveClients,
		RevenueRatio:              r.RevenueRatio,
		RecurringRevenuePct:       r.RecurringRevenuePct,
		AutomatedThisWeek:         r.AutomatedThisWeek,
		BiggestBottleneck:         r.BiggestBottleneck,
		AutomationIndex:           r.AutomationIndex,
		TimeSavedVsBaseline:       r.TimeSavedVsBaseline,
		RevenueEfficiencyMultiple: r.RevenueEfficiencyMultiple,
		ClientCapacityScore:       r.ClientCapacityScore,
	}
}

type submitWeekOutput struct {
	Week       weekView `json:"week"`
	Warnings   []string `json:"warnings,omitempty"`
	Recomputed int      `json:"recomputed,omitempty"`
	Message    string   `json:"message"`
}

type getWeekInput struct {
	WeekNumber int `json:"week_number" jsonschema:"Week number to fetch"`
}

type weekOutput struct {
	Week weekView `json:"week"`
}

type listWeeksInput struct{}

type listWeeksOutput struct {
	Count int        `json:"count"`
	Weeks []weekView `json:"weeks"`
}

type getBaselineInput struct{}

type baselineOutput struct {
	Present  bool             `json:"present"`
	Baseline *models.Baseline `json:"baseline,omitempty"`
	Message  string           `json:"message"`
}

type getReportInput struct{}

type requirementOutput struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

type reportOutput struct {
	Markdown     string              `json:"markdown"`
	CurrentWeek  int                 `json:"current_week,omitempty"`
	Requirements []requirementOutput `json:"requirements,omitempty"`
	Remaining    int                 `json:"remaining"`
}

// Tool handlers

func (s *Server) handleSubmitWeek(ctx context.Context, req *mcp.CallToolRequest, input submitWeekInput) (*mcp.CallToolResult, submitWeekOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := models.RawWeeklyInput{
		WeekNumber:          input.WeekNumber,
		TotalHours:          input.TotalHours,
		AutomatedHours:      input.AutomatedHours,
		ActiveClients:       input.ActiveClients,
		RevenueRatio:        input.RevenueRatio,
		RecurringRevenuePct: input.RecurringRevenuePct,
		AutomatedThisWeek:   input.AutomatedThisWeek,
		BiggestBottleneck:   input.BiggestBottleneck,
	}

	res, err := s.tracker.Submit(ctx, raw)
	if err != nil {
		return nil, submitWeekOutput{}, fmt.Errorf("failed to submit week: %w", err)
	}

	r := res.Record
	return nil, submitWeekOutput{
		Week:       toWeekView(r),
		Warnings:   res.Warnings,
		Recomputed: res.Recomputed,
		Message: fmt.Sprintf("Week %d submitted. Automation Index: %s%%, Time Saved: %s hours/week, Revenue Efficiency: %sx",
			r.WeekNumber, report.Fixed(r.AutomationIndex, 1), report.Fixed(r.TimeSavedVsBaseline, 1), report.Fixed(r.RevenueEfficiencyMultiple, 2)),
	}, nil
}

func (s *Server) handleGetWeek(ctx context.Context, req *mcp.CallToolRequest, input getWeekInput) (*mcp.CallToolResult, weekOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.Week(ctx, input.WeekNumber)
	if err != nil {
		return nil, weekOutput{}, fmt.Errorf("failed to get week: %w", err)
	}
	return nil, weekOutput{Week: toWeekView(w)}, nil
}

func (s *Server) handleListWeeks(ctx context.Context, req *mcp.CallToolRequest, input listWeeksInput) (*mcp.CallToolResult, listWeeksOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weeks, err := s.tracker.Weeks(ctx)
	if err != nil {
		return nil, listWeeksOutput{}, fmt.Errorf("failed to list weeks: %w", err)
	}
	out := listWeeksOutput{Count: len(weeks), Weeks: make([]weekView, 0, len(weeks))}
	for _, w := range weeks {
		out.Weeks = append(out.Weeks, toWeekView(w))
	}
	return nil, out, nil
}

func (s *Server) handleGetBaseline(ctx context.Context, req *mcp.CallToolRequest, input getBaselineInput) (*mcp.CallToolResult, baselineOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.tracker.ResolveBaseline(ctx)
	if err != nil {
		return nil, baselineOutput{}, fmt.Errorf("failed to get baseline: %w", err)
	}
	if b == nil {
		return nil, baselineOutput{Message: "No baseline yet. Submit week 1 first."}, nil
	}
	return nil, baselineOutput{
		Present:  true,
		Baseline: b,
		Message: fmt.Sprintf("Baseline: %s hours, %d clients, revenue ratio %s",
			report.Fixed(b.TotalHours, 1), b.ActiveClients, report.Fixed(b.RevenueRatio, 2)),
	}, nil
}

func (s *Server) handleGetReport(ctx context.Context, req *mcp.CallToolRequest, input getReportInput) (*mcp.CallToolResult, reportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.summary(ctx)
	if err != nil {
		return nil, reportOutput{}, err
	}

	out := reportOutput{Markdown: report.Markdown(summary)}
	if summary != nil {
		out.CurrentWeek = summary.Latest.WeekNumber
		out.Remaining = summary.Remaining()
		for _, r := range summary.Requirements {
			out.Requirements = append(out.Requirements, requirementOutput{Name: r.Name, Met: r.Met})
		}
	}
	return nil, out, nil
}

// summary builds the report summary; nil means no weeks are stored.
func (s *Server) summary(ctx context.Context) (*report.Summary, error) {
	weeks, err := s.tracker.Weeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	return report.Build(weeks, s.targets), nil
}

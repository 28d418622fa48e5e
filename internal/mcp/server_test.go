// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap/zaptest"

	"github.com/harperreed/scorecard/internal/report"
	"github.com/harperreed/scorecard/internal/storage"
	"github.com/harperreed/scorecard/internal/tracker"
)

// setupTestServer creates a server over a fresh database in a temp directory.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "scorecard.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tr := tracker.New(db, tracker.WithLogger(zaptest.NewLogger(t)))
	server, err := NewServer(tr, report.DefaultTargets(), "test")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func baselineInput() submitWeekInput {
	return submitWeekInput{
		WeekNumber: 1, TotalHours: 55, AutomatedHours: 8, ActiveClients: 3,
		RevenueRatio: 1.0, RecurringRevenuePct: 10,
		AutomatedThisWeek: "Email filtering", BiggestBottleneck: "Client onboarding",
	}
}

func secondInput() submitWeekInput {
	return submitWeekInput{
		WeekNumber: 2, TotalHours: 52, AutomatedHours: 15, ActiveClients: 3,
		RevenueRatio: 1.05, RecurringRevenuePct: 10,
	}
}

func submit(t *testing.T, s *Server, in submitWeekInput) submitWeekOutput {
	t.Helper()
	_, out, err := s.handleSubmitWeek(context.Background(), &mcp.CallToolRequest{}, in)
	if err != nil {
		t.Fatalf("handleSubmitWeek failed: %v", err)
	}
	return out
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.tracker == nil {
		t.Error("Expected non-nil tracker")
	}
	if server.targets != report.DefaultTargets() {
		t.Errorf("targets = %+v, want defaults", server.targets)
	}
}

func TestHandleSubmitWeek(t *testing.T) {
	server := setupTestServer(t)

	out := submit(t, server, baselineInput())
	if out.Week.WeekNumber != 1 {
		t.Errorf("WeekNumber = %d, want 1", out.Week.WeekNumber)
	}
	if out.Week.TimeSavedVsBaseline != 0 || out.Week.RevenueEfficiencyMultiple != 1 {
		t.Errorf("baseline week derived = %+v", out.Week)
	}
	if !strings.Contains(out.Message, "Week 1 submitted") {
		t.Errorf("unexpected message: %s", out.Message)
	}

	out = submit(t, server, secondInput())
	if out.Week.TimeSavedVsBaseline != 3.0 {
		t.Errorf("TimeSavedVsBaseline = %v, want 3.0", out.Week.TimeSavedVsBaseline)
	}
	if out.Week.ManualHours != 37 {
		t.Errorf("ManualHours = %v, want 37", out.Week.ManualHours)
	}
	if !strings.Contains(out.Message, "Time Saved: 3.0 hours/week") {
		t.Errorf("unexpected message: %s", out.Message)
	}
	if len(out.Week.SubmissionDate) != len("2006-01-02") {
		t.Errorf("SubmissionDate = %q, want a calendar date", out.Week.SubmissionDate)
	}
}

func TestHandleSubmitWeekWarnings(t *testing.T) {
	server := setupTestServer(t)

	in := secondInput()
	in.AutomatedHours = 60
	out := submit(t, server, in)
	if len(out.Warnings) == 0 {
		t.Error("Expected warnings for automated hours above total")
	}
}

func TestHandleSubmitWeekInvalid(t *testing.T) {
	server := setupTestServer(t)

	in := secondInput()
	in.WeekNumber = 0
	if _, _, err := server.handleSubmitWeek(context.Background(), &mcp.CallToolRequest{}, in); err == nil {
		t.Error("Expected error for week 0")
	}

	submit(t, server, baselineInput())
	in = secondInput()
	in.TotalHours = 0
	if _, _, err := server.handleSubmitWeek(context.Background(), &mcp.CallToolRequest{}, in); err == nil {
		t.Error("Expected error for zero total hours")
	}
}

func TestHandleGetWeek(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	submit(t, server, baselineInput())

	_, out, err := server.handleGetWeek(ctx, &mcp.CallToolRequest{}, getWeekInput{WeekNumber: 1})
	if err != nil {
		t.Fatalf("handleGetWeek failed: %v", err)
	}
	if out.Week.AutomatedThisWeek != "Email filtering" {
		t.Errorf("AutomatedThisWeek = %q", out.Week.AutomatedThisWeek)
	}

	_, _, err = server.handleGetWeek(ctx, &mcp.CallToolRequest{}, getWeekInput{WeekNumber: 7})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestHandleListWeeks(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleListWeeks(ctx, &mcp.CallToolRequest{}, listWeeksInput{})
	if err != nil {
		t.Fatalf("handleListWeeks failed: %v", err)
	}
	if out.Count != 0 || out.Weeks == nil {
		t.Errorf("empty list = %+v, want zero count and empty slice", out)
	}

	submit(t, server, secondInput())
	submit(t, server, baselineInput())

	_, out, err = server.handleListWeeks(ctx, &mcp.CallToolRequest{}, listWeeksInput{})
	if err != nil {
		t.Fatalf("handleListWeeks failed: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if out.Weeks[0].WeekNumber != 1 || out.Weeks[1].WeekNumber != 2 {
		t.Errorf("weeks out of order: %d, %d", out.Weeks[0].WeekNumber, out.Weeks[1].WeekNumber)
	}
}

func TestHandleGetBaseline(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleGetBaseline(ctx, &mcp.CallToolRequest{}, getBaselineInput{})
	if err != nil {
		t.Fatalf("handleGetBaseline failed: %v", err)
	}
	if out.Present || out.Baseline != nil {
		t.Errorf("Expected no baseline, got %+v", out)
	}

	submit(t, server, baselineInput())

	_, out, err = server.handleGetBaseline(ctx, &mcp.CallToolRequest{}, getBaselineInput{})
	if err != nil {
		t.Fatalf("handleGetBaseline failed: %v", err)
	}
	if !out.Present || out.Baseline == nil {
		t.Fatalf("Expected baseline, got %+v", out)
	}
	if out.Baseline.TotalHours != 55 || out.Baseline.ActiveClients != 3 {
		t.Errorf("Baseline = %+v", *out.Baseline)
	}
}

func TestHandleGetReport(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleGetReport(ctx, &mcp.CallToolRequest{}, getReportInput{})
	if err != nil {
		t.Fatalf("handleGetReport failed: %v", err)
	}
	if !strings.Contains(out.Markdown, report.NoData) {
		t.Errorf("Expected no-data message, got %q", out.Markdown)
	}

	submit(t, server, baselineInput())
	submit(t, server, secondInput())

	_, out, err = server.handleGetReport(ctx, &mcp.CallToolRequest{}, getReportInput{})
	if err != nil {
		t.Fatalf("handleGetReport failed: %v", err)
	}
	if !strings.Contains(out.Markdown, "Transformation Report") {
		t.Errorf("Markdown missing title: %q", out.Markdown)
	}
	if out.CurrentWeek != 2 {
		t.Errorf("CurrentWeek = %d, want 2", out.CurrentWeek)
	}
	if len(out.Requirements) != 4 {
		t.Errorf("Requirements = %d, want 4", len(out.Requirements))
	}
	if out.Remaining != 4 {
		t.Errorf("Remaining = %d, want 4", out.Remaining)
	}
}

func TestHandleProgressResource(t *testing.T) {
	server := setupTestServer(t)
	submit(t, server, baselineInput())

	result, err := server.handleProgressResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleProgressResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content item, got %d", len(result.Contents))
	}

	content := result.Contents[0]
	if content.URI != progressURI || content.MIMEType != "application/json" {
		t.Errorf("content = %s %s", content.URI, content.MIMEType)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(content.Text), &decoded); err != nil {
		t.Fatalf("resource is not JSON: %v", err)
	}
	if decoded["count"] != float64(1) {
		t.Errorf("count = %v, want 1", decoded["count"])
	}
}

func TestHandleBaselineResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleBaselineResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleBaselineResource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, `"present": false`) {
		t.Errorf("Expected absent baseline: %s", result.Contents[0].Text)
	}

	submit(t, server, baselineInput())

	result, err = server.handleBaselineResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleBaselineResource failed: %v", err)
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, `"present": true`) || !strings.Contains(text, `"total_hours": 55`) {
		t.Errorf("Unexpected baseline resource: %s", text)
	}
}

func TestHandleReportResource(t *testing.T) {
	server := setupTestServer(t)
	submit(t, server, baselineInput())

	result, err := server.handleReportResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleReportResource failed: %v", err)
	}

	content := result.Contents[0]
	if content.URI != reportURI || content.MIMEType != "text/markdown" {
		t.Errorf("content = %s %s", content.URI, content.MIMEType)
	}
	if !strings.Contains(content.Text, "Graduation Readiness") {
		t.Errorf("Report missing readiness section: %s", content.Text)
	}
}

// ABOUTME: MCP resource implementations for the weekly scorecard.
// ABOUTME: Provides scorecard://progress, scorecard://baseline, and scorecard://report.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/scorecard/internal/report"
)

const (
	progressURI = "scorecard://progress"
	baselineURI = "scorecard://baseline"
	reportURI   = "scorecard://report"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         progressURI,
		Name:        "Transformation Progress",
		Description: "Every stored week with its derived indices",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         baselineURI,
		Name:        "Week 1 Baseline",
		Description: "Hours, clients, and revenue ratio of week 1",
		MIMEType:    "application/json",
	}, s.handleBaselineResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         reportURI,
		Name:        "Transformation Report",
		Description: "Narrative report with key metrics and graduation readiness",
		MIMEType:    "text/markdown",
	}, s.handleReportResource)
}

// Resource handlers

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weeks, err := s.tracker.Weeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}

	result := map[string]interface{}{
		"count":   len(weeks),
		"columns": report.ProgressHeaders,
		"rows":    report.ProgressRows(weeks),
		"weeks":   weeks,
	}
	return jsonResource(progressURI, result)
}

func (s *Server) handleBaselineResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.tracker.ResolveBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}

	result := map[string]interface{}{
		"present":  b != nil,
		"baseline": b,
	}
	return jsonResource(baselineURI, result)
}

func (s *Server) handleReportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.summary(ctx)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      reportURI,
			MIMEType: "text/markdown",
			Text:     report.Markdown(summary),
		}},
	}, nil
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ABOUTME: MCP server setup for the weekly scorecard.
// ABOUTME: Wraps the MCP server around a Tracker and report targets.
package mcp

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/scorecard/internal/report"
	"github.com/harperreed/scorecard/internal/tracker"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	targets   report.Targets

	// mu serializes handlers; the store assumes a single writer.
	mu sync.Mutex
}

// NewServer creates a new MCP server over tr.
func NewServer(tr *tracker.Tracker, targets report.Targets, version string) (*Server, error) {
	if version == "" {
		version = "dev"
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "scorecard",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   tr,
		targets:   targets.WithDefaults(),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server over the configured store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "scorecard": {
        "command": "scorecard",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  submit_week    Record one week's metrics
  get_week       Get one stored week
  list_weeks     List every stored week
  get_baseline   Get the week 1 baseline
  get_report     Get the transformation report as Markdown

AVAILABLE RESOURCES:

  scorecard://progress   Every week with derived indices
  scorecard://baseline   The week 1 baseline
  scorecard://report     The narrative report`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(tr, cfg.GetTargets(), version)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

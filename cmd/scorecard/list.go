// ABOUTME: CLI command for the progress table.
// ABOUTME: One row per stored week followed by the latest week's notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/report"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Show the progress table",
	Long: `Show every stored week in a table, oldest first.

COLUMNS:

  Week, Automation %, Hours Saved, Rev Efficiency, Client Capacity, Recurring %

Numbers are rounded for display; stored values keep full precision.
The latest week's automation and bottleneck notes follow the table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, err := tr.Weeks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}

		fmt.Print(report.ProgressTable(weeks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

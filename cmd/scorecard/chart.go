// ABOUTME: CLI command for the terminal dashboard charts.
// ABOUTME: Draws automation, time, efficiency, recurring revenue, and hours panels.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/report"
)

var chartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show dashboard charts",
	Long: `Draw bar charts of every stored week:

  Automation Index against its target
  Hours saved vs week 1
  Revenue efficiency and client capacity against the 1.0x baseline
  Recurring revenue against its target
  Automated vs manual hours per week

Targets come from the "targets" section of the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, err := tr.Weeks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}

		fmt.Print(report.Charts(weeks, cfg.GetTargets(), chartWidth))
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartWidth, "width", report.DefaultChartWidth, "bar width in cells")
	rootCmd.AddCommand(chartCmd)
}

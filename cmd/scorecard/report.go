// ABOUTME: CLI command for the narrative transformation report.
// ABOUTME: Renders the Markdown report with glamour, or prints it raw.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/report"
)

var (
	reportRaw   bool
	reportStyle string
	reportWidth int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the transformation report",
	Long: `Show the narrative report: current week, key metrics with their change
and target status, graduation readiness, and notes from the last two weeks.

GRADUATION REQUIREMENTS (defaults):

  Automation Index ≥ 70%
  Time reduction ≥ 50% vs week 1
  Recurring revenue ≥ 50%
  12 weeks completed

Examples:
  scorecard report                 # Rendered for the terminal
  scorecard report --raw           # Plain Markdown
  scorecard report --style light   # Force a glamour style`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, err := tr.Weeks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}

		md := report.Markdown(report.Build(weeks, cfg.GetTargets()))
		if reportRaw {
			fmt.Print(md)
			return nil
		}

		out, err := report.Render(md, report.RenderOptions{Style: reportStyle, Width: reportWidth})
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "print Markdown without rendering")
	reportCmd.Flags().StringVar(&reportStyle, "style", "", "glamour style (dark, light, notty); default detects the terminal")
	reportCmd.Flags().IntVar(&reportWidth, "width", 80, "wrap width")
	rootCmd.AddCommand(reportCmd)
}

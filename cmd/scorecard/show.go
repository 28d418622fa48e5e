// ABOUTME: CLI command for showing one stored week.
// ABOUTME: Prints the raw inputs and the derived indices.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/report"
	"github.com/harperreed/scorecard/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <week>",
	Short: "Show one week",
	Long: `Show the stored record for one week, raw inputs and derived indices.

Example:
  scorecard show 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week number: %s", args[0])
		}

		w, err := tr.Week(cmd.Context(), n)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("week %d has not been submitted", n)
		}
		if err != nil {
			return fmt.Errorf("failed to get week: %w", err)
		}

		printWeek(w)
		return nil
	},
}

func printWeek(w *models.WeeklyRecord) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	title := fmt.Sprintf("Week %d", w.WeekNumber)
	if w.IsBaseline() {
		title += " (baseline)"
	}
	bold.Println(title)
	faint.Printf("Submitted %s\n\n", w.SubmissionDate.Format(models.DateLayout))

	fmt.Printf("  Total hours:          %s\n", report.Fixed(w.TotalHours, 1))
	fmt.Printf("  Automated hours:      %s\n", report.Fixed(w.AutomatedHours, 1))
	fmt.Printf("  Manual hours:         %s\n", report.Fixed(w.ManualHours, 1))
	fmt.Printf("  Active clients:       %d\n", w.ActiveClients)
	fmt.Printf("  Revenue ratio:        %s\n", report.Fixed(w.RevenueRatio, 2))
	fmt.Printf("  Recurring revenue:    %s%%\n", report.Fixed(w.RecurringRevenuePct, 1))
	fmt.Println()
	fmt.Printf("  Automation Index:     %s%%\n", report.Fixed(w.AutomationIndex, 1))
	fmt.Printf("  Time saved:           %s hours\n", report.Fixed(w.TimeSavedVsBaseline, 1))
	fmt.Printf("  Revenue efficiency:   %sx\n", report.Fixed(w.RevenueEfficiencyMultiple, 2))
	fmt.Printf("  Client capacity:      %sx\n", report.Fixed(w.ClientCapacityScore, 2))

	if w.AutomatedThisWeek != "" {
		fmt.Printf("\n  Automated:  %s\n", w.AutomatedThisWeek)
	}
	if w.BiggestBottleneck != "" {
		fmt.Printf("  Bottleneck: %s\n", w.BiggestBottleneck)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

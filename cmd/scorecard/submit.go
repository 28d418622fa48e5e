// ABOUTME: CLI command for submitting one week's metrics.
// ABOUTME: Derives the indices against the week 1 baseline and stores the week.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/report"
	"github.com/harperreed/scorecard/internal/revenue"
)

var (
	submitWeek            int
	submitTotalHours      float64
	submitAutomatedHours  float64
	submitClients         int
	submitRevenueRatio    float64
	submitRecurring       float64
	submitAutomated       string
	submitBottleneck      string
	submitRevenue         float64
	submitBaselineRevenue float64
	submitCurrency        string
)

var submitCmd = &cobra.Command{
	Use:     "submit",
	Aliases: []string{"s"},
	Short:   "Submit a week's metrics",
	Long: `Submit one week's metrics. Submitting a week that already exists replaces it.

Week 1 is the baseline: its time saved is 0 and its efficiency multiples are 1.0.
Later weeks are compared against the stored week 1.

REVENUE:

  Give either the ratio directly:
    --revenue-ratio 1.05

  or both absolute amounts, which are used once and never stored:
    --revenue 10500 --baseline-revenue 10000 --currency USD

  Week 1 defaults to a ratio of 1.0.

Suspicious values (automated hours above total, percentages outside 0-100)
print a warning but are stored as given.

Examples:
  scorecard submit --week 1 --total-hours 55 --automated-hours 8 --clients 3 --recurring 10
  scorecard submit --week 2 --total-hours 52 --automated-hours 15 --clients 3 \
    --revenue-ratio 1.05 --recurring 10 --automated "Invoice reminders"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ratio, err := resolveRevenueRatio(cmd)
		if err != nil {
			return err
		}

		raw := models.RawWeeklyInput{
			WeekNumber:          submitWeek,
			TotalHours:          submitTotalHours,
			AutomatedHours:      submitAutomatedHours,
			ActiveClients:       submitClients,
			RevenueRatio:        ratio,
			RecurringRevenuePct: submitRecurring,
			AutomatedThisWeek:   submitAutomated,
			BiggestBottleneck:   submitBottleneck,
		}

		res, err := tr.Submit(cmd.Context(), raw)
		if res != nil {
			for _, w := range res.Warnings {
				color.Yellow("⚠ %s", w)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to submit week: %w", err)
		}

		r := res.Record
		color.Green("✓ Week %d submitted", r.WeekNumber)
		fmt.Printf("  Automation Index:    %s%%\n", report.Fixed(r.AutomationIndex, 1))
		fmt.Printf("  Time Saved:          %s hours/week\n", report.Fixed(r.TimeSavedVsBaseline, 1))
		fmt.Printf("  Revenue Efficiency:  %sx\n", report.Fixed(r.RevenueEfficiencyMultiple, 2))
		fmt.Printf("  Client Capacity:     %sx\n", report.Fixed(r.ClientCapacityScore, 2))

		if res.Recomputed > 0 {
			color.Green("✓ Recomputed %d week(s) against the new baseline", res.Recomputed)
		}
		return nil
	},
}

// resolveRevenueRatio picks the ratio from --revenue-ratio or from the
// absolute amounts.
func resolveRevenueRatio(cmd *cobra.Command) (float64, error) {
	flags := cmd.Flags()
	byAmount := flags.Changed("revenue") || flags.Changed("baseline-revenue")

	switch {
	case byAmount && flags.Changed("revenue-ratio"):
		return 0, fmt.Errorf("use either --revenue-ratio or --revenue/--baseline-revenue, not both")
	case byAmount:
		if !flags.Changed("revenue") || !flags.Changed("baseline-revenue") {
			return 0, fmt.Errorf("--revenue and --baseline-revenue must be given together")
		}
		ratio, err := revenue.RatioFromAmounts(submitRevenue, submitBaselineRevenue, submitCurrency)
		if err != nil {
			return 0, fmt.Errorf("invalid revenue: %w", err)
		}
		return ratio, nil
	case flags.Changed("revenue-ratio"):
		return submitRevenueRatio, nil
	case submitWeek == models.BaselineWeek:
		return 1.0, nil
	default:
		return 0, fmt.Errorf("--revenue-ratio is required after week 1 (or give --revenue and --baseline-revenue)")
	}
}

func init() {
	submitCmd.Flags().IntVarP(&submitWeek, "week", "w", 0, "week number (1 is the baseline)")
	submitCmd.Flags().Float64Var(&submitTotalHours, "total-hours", 0, "total hours worked this week")
	submitCmd.Flags().Float64Var(&submitAutomatedHours, "automated-hours", 0, "hours handled by automation")
	submitCmd.Flags().IntVar(&submitClients, "clients", 0, "active clients")
	submitCmd.Flags().Float64Var(&submitRevenueRatio, "revenue-ratio", 0, "revenue relative to week 1")
	submitCmd.Flags().Float64Var(&submitRecurring, "recurring", 0, "recurring revenue percentage (0-100)")
	submitCmd.Flags().StringVar(&submitAutomated, "automated", "", "what you automated this week")
	submitCmd.Flags().StringVar(&submitBottleneck, "bottleneck", "", "biggest bottleneck this week")
	submitCmd.Flags().Float64Var(&submitRevenue, "revenue", 0, "this week's revenue (not stored)")
	submitCmd.Flags().Float64Var(&submitBaselineRevenue, "baseline-revenue", 0, "week 1 revenue (not stored)")
	submitCmd.Flags().StringVar(&submitCurrency, "currency", "USD", "currency code for --revenue amounts")

	_ = submitCmd.MarkFlagRequired("week")
	_ = submitCmd.MarkFlagRequired("total-hours")
	_ = submitCmd.MarkFlagRequired("automated-hours")
	_ = submitCmd.MarkFlagRequired("clients")

	rootCmd.AddCommand(submitCmd)
}

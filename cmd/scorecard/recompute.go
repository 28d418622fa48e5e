// ABOUTME: CLI command for re-deriving stored weeks against the current baseline.
// ABOUTME: Used after week 1 is corrected under the keep-history policy.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Re-derive every week against the current week 1",
	Long: `Re-derive the indices of every stored week after week 1 using the
currently stored week 1 as the baseline.

By default, re-submitting week 1 leaves later weeks as they were computed
("keep-history"). Run this to bring them in line with the new baseline, or
set "baseline_policy": "recompute" in the config to do it automatically.

Nothing is written unless every week derives cleanly. Submission dates are
kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := tr.Recompute(cmd.Context())
		if err != nil {
			return fmt.Errorf("recompute failed: %w", err)
		}

		if n == 0 {
			fmt.Println("No weeks to recompute.")
			return nil
		}
		color.Green("✓ Recomputed %d week(s)", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recomputeCmd)
}

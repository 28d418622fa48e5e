// ABOUTME: CLI command for copying weeks between storage backends.
// ABOUTME: Moves data between sqlite, badger, and charm without re-deriving it.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/scorecard/internal/charm"
	"github.com/harperreed/scorecard/internal/config"
	"github.com/harperreed/scorecard/internal/storage"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy weeks between storage backends",
	Long: `Copy every stored week from one backend to another.

BACKENDS:

  sqlite   ~/.local/share/scorecard/scorecard.db (default)
  badger   ~/.local/share/scorecard/badger/
  charm    Charm KV, synced across devices

Weeks already in the destination with the same number are replaced.
Derived indices are copied as stored.

After migrating, set "backend" in ~/.config/scorecard/config.json to the
destination to start using it.

USAGE:

  scorecard migrate --from sqlite --to badger --dry-run   # Preview
  scorecard migrate --from sqlite --to badger             # Copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		for _, b := range []string{migrateFrom, migrateTo} {
			if !slices.Contains(config.Backends, b) {
				return fmt.Errorf("unknown backend: %q (use one of %s)", b, strings.Join(config.Backends, ", "))
			}
		}
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %s", migrateFrom)
		}

		src, err := cfg.OpenBackend(migrateFrom, logger)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", migrateFrom, err)
		}
		defer src.Close()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()

			weeks, err := src.ListWeeks()
			if err != nil {
				return fmt.Errorf("failed to list weeks: %w", err)
			}
			fmt.Printf("Would copy %d week(s) from %s to %s\n", len(weeks), migrateFrom, migrateTo)
			for _, w := range weeks {
				fmt.Printf("  week %d\n", w.WeekNumber)
			}
			return nil
		}

		if migrateTo == "badger" {
			nonEmpty, err := storage.IsDirNonEmpty(cfg.BadgerDir())
			if err != nil {
				return err
			}
			if nonEmpty {
				color.Yellow("⚠ %s already has data; weeks with the same number will be replaced", cfg.BadgerDir())
			}
		}

		dst, err := cfg.OpenBackend(migrateTo, logger)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", migrateTo, err)
		}
		defer dst.Close()

		// Sync a charm destination once at the end rather than per week.
		if client, ok := dst.(*charm.Client); ok {
			client.SetAutoSync(false)
			defer client.SetAutoSync(true)
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		if client, ok := dst.(*charm.Client); ok {
			if err := client.Sync(); err != nil {
				color.Yellow("⚠ Sync failed: %v", err)
			}
		}

		color.Green("✓ Migrated %d week(s) from %s to %s", summary.Weeks, migrateFrom, migrateTo)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "sqlite", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}

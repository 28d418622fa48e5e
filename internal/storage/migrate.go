// ABOUTME: Data migration between scorecard storage backends.
// ABOUTME: Copies every weekly record from source to destination unchanged.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Weeks int
}

// MigrateData copies all weeks from src to dst. Derived fields are copied as
// stored, not recomputed. Existing weeks in dst with the same number are
// replaced.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	if err := dst.Init(); err != nil {
		return nil, fmt.Errorf("initialize destination: %w", err)
	}

	weeks, err := src.ListWeeks()
	if err != nil {
		return nil, fmt.Errorf("list source weeks: %w", err)
	}

	for _, w := range weeks {
		if err := dst.UpsertWeek(w); err != nil {
			return nil, fmt.Errorf("copy week %d: %w", w.WeekNumber, err)
		}
		summary.Weeks++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}

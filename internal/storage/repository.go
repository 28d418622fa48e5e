// ABOUTME: Repository interface for weekly scorecard storage.
// ABOUTME: Defines the keyed upsert and read contract every backend implements.
package storage

import (
	"github.com/harperreed/scorecard/internal/models"
)

// Repository defines the storage interface for weekly records.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Init ensures the underlying table or keyspace exists. Safe to call on
	// every start.
	Init() error

	// UpsertWeek writes the full record, replacing any row with the same
	// week number.
	UpsertWeek(r *models.WeeklyRecord) error

	// GetWeek returns the record for a week, or an error matching
	// ErrNotFound when the week was never submitted.
	GetWeek(weekNumber int) (*models.WeeklyRecord, error)

	// ListWeeks returns every record ordered by ascending week number.
	ListWeeks() ([]*models.WeeklyRecord, error)

	Close() error
}

// ABOUTME: Weekly record operations for SQLite storage.
// ABOUTME: Implements keyed upsert, single-week fetch, and ordered listing.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/scorecard/internal/models"
)

const weekColumns = `week_number, submission_date, total_hours, automated_hours, manual_hours,
	active_clients, revenue_ratio, recurring_revenue_pct, automated_this_week, biggest_bottleneck,
	automation_index, time_saved_vs_baseline, revenue_efficiency_multiple, client_capacity_score`

// UpsertWeek writes the full record, replacing any row with the same week number.
func (d *DB) UpsertWeek(r *models.WeeklyRecord) error {
	query := `INSERT OR REPLACE INTO transformation_metrics (` + weekColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.Exec(query,
		r.WeekNumber,
		r.SubmissionDate.Format(models.DateLayout),
		r.TotalHours,
		r.AutomatedHours,
		r.ManualHours,
		r.ActiveClients,
		r.RevenueRatio,
		r.RecurringRevenuePct,
		r.AutomatedThisWeek,
		r.BiggestBottleneck,
		r.AutomationIndex,
		r.TimeSavedVsBaseline,
		r.RevenueEfficiencyMultiple,
		r.ClientCapacityScore,
	)
	if err != nil {
		return storageErr(fmt.Sprintf("upsert week %d", r.WeekNumber), err)
	}
	return nil
}

// GetWeek returns the record for weekNumber, or an error wrapping ErrNotFound.
func (d *DB) GetWeek(weekNumber int) (*models.WeeklyRecord, error) {
	query := `SELECT ` + weekColumns + ` FROM transformation_metrics WHERE week_number = ?`

	r, err := scanWeek(d.db.QueryRow(query, weekNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(weekNumber)
		}
		return nil, storageErr(fmt.Sprintf("get week %d", weekNumber), err)
	}
	return r, nil
}

// ListWeeks returns every stored record ordered by week number ascending.
func (d *DB) ListWeeks() ([]*models.WeeklyRecord, error) {
	query := `SELECT ` + weekColumns + ` FROM transformation_metrics ORDER BY week_number ASC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, storageErr("list weeks", err)
	}
	defer rows.Close()

	var weeks []*models.WeeklyRecord
	for rows.Next() {
		r, err := scanWeek(rows)
		if err != nil {
			return nil, storageErr("list weeks", err)
		}
		weeks = append(weeks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list weeks", err)
	}
	return weeks, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeek(row rowScanner) (*models.WeeklyRecord, error) {
	var r models.WeeklyRecord
	var submitted, automated, bottleneck sql.NullString
	var total, auto, manual, ratio, recurring sql.NullFloat64
	var clients sql.NullInt64
	var index, saved, efficiency, capacity sql.NullFloat64

	err := row.Scan(
		&r.WeekNumber, &submitted,
		&total, &auto, &manual,
		&clients, &ratio, &recurring,
		&automated, &bottleneck,
		&index, &saved, &efficiency, &capacity,
	)
	if err != nil {
		return nil, err
	}

	if submitted.Valid {
		r.SubmissionDate, err = parseDate(submitted.String)
		if err != nil {
			return nil, fmt.Errorf("parse submission date for week %d: %w", r.WeekNumber, err)
		}
	}
	r.TotalHours = total.Float64
	r.AutomatedHours = auto.Float64
	r.ManualHours = manual.Float64
	r.ActiveClients = int(clients.Int64)
	r.RevenueRatio = ratio.Float64
	r.RecurringRevenuePct = recurring.Float64
	r.AutomatedThisWeek = automated.String
	r.BiggestBottleneck = bottleneck.String
	r.AutomationIndex = index.Float64
	r.TimeSavedVsBaseline = saved.Float64
	r.RevenueEfficiencyMultiple = efficiency.Float64
	r.ClientCapacityScore = capacity.Float64

	return &r, nil
}

// parseDate accepts the stored layout and the RFC 3339 form the driver
// produces for DATE columns.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return models.DateOf(t), nil
}

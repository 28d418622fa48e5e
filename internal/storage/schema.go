// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the transformation_metrics table keyed by week number.
package storage

const schema = `
CREATE TABLE IF NOT EXISTS transformation_metrics (
	week_number INTEGER PRIMARY KEY,
	submission_date DATE,

	total_hours REAL,
	automated_hours REAL,
	manual_hours REAL,

	active_clients INTEGER,

	-- revenue is stored only as a ratio to week 1
	revenue_ratio REAL,

	recurring_revenue_pct REAL,

	automated_this_week TEXT,
	biggest_bottleneck TEXT,

	-- derived at write time, never recomputed on read
	automation_index REAL,
	time_saved_vs_baseline REAL,
	revenue_efficiency_multiple REAL,
	client_capacity_score REAL
);
`

// Init creates the schema if it does not exist yet.
func (d *DB) Init() error {
	if _, err := d.db.Exec(schema); err != nil {
		return storageErr("initialize schema", err)
	}
	return nil
}

package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per printed report
		`CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL,
			type_code TEXT NOT NULL,
			type_name TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			distance_km REAL NOT NULL,
			mean_speed_kmh REAL NOT NULL,
			calories_kcal REAL NOT NULL,
			recorded_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_reports_run ON reports(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_recorded_at ON reports(recorded_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

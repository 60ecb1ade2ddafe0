package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store is the report history backed by SQLite
type Store struct {
	db *sql.DB
}

// newStore creates a Store from a database connection.
func newStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport appends a report to the history and returns its row id
func (s *Store) SaveReport(ctx context.Context, r *Report) (int64, error) {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (
			run_id, type_code, type_name, duration_hours,
			distance_km, mean_speed_kmh, calories_kcal, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.RunID.String(), r.TypeCode, r.TypeName, r.Duration,
		r.Distance, r.MeanSpeed, r.Calories, r.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	r.ID = id
	return id, nil
}

// RecentReports returns up to limit reports, newest first
func (s *Store) RecentReports(ctx context.Context, limit int) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, type_code, type_name, duration_hours,
			distance_km, mean_speed_kmh, calories_kcal, recorded_at
		FROM reports
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports, err := scanReports(rows)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	return reports, nil
}

// ReportsForRun returns the reports of one run in insertion order
func (s *Store) ReportsForRun(ctx context.Context, runID uuid.UUID) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, type_code, type_name, duration_hours,
			distance_km, mean_speed_kmh, calories_kcal, recorded_at
		FROM reports
		WHERE run_id = ?
		ORDER BY id
	`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// CaloriesByType sums calories per type name across the whole history
func (s *Store) CaloriesByType(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type_name, SUM(calories_kcal)
		FROM reports
		GROUP BY type_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var name string
		var total float64
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		totals[name] = total
	}
	return totals, rows.Err()
}

func scanReports(rows *sql.Rows) ([]Report, error) {
	var reports []Report
	for rows.Next() {
		var r Report
		var runID, recordedAt string
		if err := rows.Scan(
			&r.ID, &runID, &r.TypeCode, &r.TypeName, &r.Duration,
			&r.Distance, &r.MeanSpeed, &r.Calories, &recordedAt,
		); err != nil {
			return nil, err
		}

		id, err := uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("parsing run id %q: %w", runID, err)
		}
		r.RunID = id

		r.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}

		reports = append(reports, r)
	}
	return reports, rows.Err()
}

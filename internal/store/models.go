package store

import (
	"time"

	"github.com/google/uuid"
)

// Report is a stored workout summary
type Report struct {
	ID         int64     `db:"id"`
	RunID      uuid.UUID `db:"run_id"`
	TypeCode   string    `db:"type_code"` // "RUN", "WLK", "SWM"
	TypeName   string    `db:"type_name"`
	Duration   float64   `db:"duration_hours"`
	Distance   float64   `db:"distance_km"`
	MeanSpeed  float64   `db:"mean_speed_kmh"`
	Calories   float64   `db:"calories_kcal"`
	RecordedAt time.Time `db:"recorded_at"`
}

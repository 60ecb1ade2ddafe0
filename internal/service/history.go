package service

import (
	"context"
	"fmt"

	"fittracker/internal/store"
	"fittracker/internal/workout"
)

// HistoryReader is the read side of the report history
type HistoryReader interface {
	RecentReports(ctx context.Context, limit int) ([]store.Report, error)
	CaloriesByType(ctx context.Context) (map[string]float64, error)
}

// HistoryService provides read-only queries over stored reports
type HistoryService struct {
	store HistoryReader
}

// NewHistoryService creates a new history service
func NewHistoryService(store HistoryReader) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to n stored reports, oldest first, ready for printing
func (h *HistoryService) Recent(ctx context.Context, n int) ([]workout.InfoMessage, error) {
	if n <= 0 {
		return nil, fmt.Errorf("history size must be positive, got %d", n)
	}

	reports, err := h.store.RecentReports(ctx, n)
	if err != nil {
		return nil, err
	}

	msgs := make([]workout.InfoMessage, len(reports))
	for i, r := range reports {
		// RecentReports is newest first
		msgs[len(reports)-1-i] = workout.InfoMessage{
			TrainingType: r.TypeName,
			Duration:     r.Duration,
			Distance:     r.Distance,
			Speed:        r.MeanSpeed,
			Calories:     r.Calories,
		}
	}
	return msgs, nil
}

// CaloriesByType returns total calories per workout type across the history
func (h *HistoryService) CaloriesByType(ctx context.Context) (map[string]float64, error) {
	return h.store.CaloriesByType(ctx)
}

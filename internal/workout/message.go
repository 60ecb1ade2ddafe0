package workout

import "fmt"

// InfoMessage is the summary of a finished workout
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary line with every number fixed at 3 decimals
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer
func (m InfoMessage) String() string {
	return m.Message()
}

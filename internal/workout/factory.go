package workout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedWorkoutType is returned when a package cannot be turned into a workout
var ErrUnsupportedWorkoutType = errors.New("unsupported workout type")

// UnsupportedTypeError describes a package with an unknown code or a
// field count that doesn't match the code's variant
type UnsupportedTypeError struct {
	Code      string
	Fields    int
	Supported []string
}

func (e *UnsupportedTypeError) Error() string {
	if v, ok := variants[e.Code]; ok {
		return fmt.Sprintf("%v: %q expects %d fields, got %d (supported: %s)",
			ErrUnsupportedWorkoutType, e.Code, v.arity, e.Fields, strings.Join(e.Supported, ", "))
	}
	return fmt.Sprintf("%v: %q (supported: %s)",
		ErrUnsupportedWorkoutType, e.Code, strings.Join(e.Supported, ", "))
}

// Unwrap lets callers match with errors.Is(err, ErrUnsupportedWorkoutType)
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedWorkoutType
}

type variant struct {
	arity int
	build func(f []float64) Workout
}

// variants maps each type code to its field count and constructor.
// Field order: action, duration, weight, then the variant extras.
var variants = map[string]variant{
	CodeRunning: {3, func(f []float64) Workout {
		return NewRunning(f[0], f[1], f[2])
	}},
	CodeWalking: {4, func(f []float64) Workout {
		return NewSportsWalking(f[0], f[1], f[2], f[3])
	}},
	CodeSwimming: {5, func(f []float64) Workout {
		return NewSwimming(f[0], f[1], f[2], f[3], f[4])
	}},
}

// SupportedCodes returns the recognized type codes in sorted order
func SupportedCodes() []string {
	codes := make([]string, 0, len(variants))
	for code := range variants {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Arity returns the number of fields a code expects, or false for unknown codes
func Arity(code string) (int, bool) {
	v, ok := variants[code]
	return v.arity, ok
}

// Create builds the workout for a sensor package.
// Codes are matched exactly; fields must match the variant's arity.
func Create(code string, fields []float64) (Workout, error) {
	v, ok := variants[code]
	if !ok || len(fields) != v.arity {
		return nil, &UnsupportedTypeError{
			Code:      code,
			Fields:    len(fields),
			Supported: SupportedCodes(),
		}
	}
	return v.build(fields), nil
}

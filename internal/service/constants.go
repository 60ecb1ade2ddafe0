package service

import "fittracker/internal/workout"

// Package is one sensor reading: a type code and its ordered fields
type Package struct {
	Code   string
	Fields []float64
}

// DefaultPackages is the built-in sample list processed when no
// packages are configured
var DefaultPackages = []Package{
	{Code: workout.CodeSwimming, Fields: []float64{720, 1, 80, 25, 40}},
	{Code: workout.CodeRunning, Fields: []float64{15000, 1, 75}},
	{Code: workout.CodeWalking, Fields: []float64{9000, 1, 75, 180}},
}

// FailurePolicy decides what the tracker does when a package fails
type FailurePolicy int

const (
	AbortOnError FailurePolicy = iota // stop at the first failing package (default)
	SkipOnError                       // log, record the failure and continue
)

// ParseFailurePolicy maps a config value to a FailurePolicy
func ParseFailurePolicy(s string) (FailurePolicy, bool) {
	switch s {
	case "", "abort":
		return AbortOnError, true
	case "skip":
		return SkipOnError, true
	}
	return AbortOnError, false
}

func (p FailurePolicy) String() string {
	if p == SkipOnError {
		return "skip"
	}
	return "abort"
}

// Package workout computes distance, mean speed and calories for the
// supported workout types and formats the resulting summary.
package workout

import "math"

// Workout is a single completed training session with its derived values
type Workout interface {
	Name() string
	Duration() float64
	Distance() float64  // km
	MeanSpeed() float64 // km/h
	Calories() float64  // kcal
	Info() InfoMessage
}

// Training holds the readings common to every workout type.
// Derived values are computed once at construction.
type Training struct {
	Action    float64 // steps or strokes
	Hours     float64
	WeightKg  float64
	consts    Constants
	distance  float64
	meanSpeed float64
	calories  float64
}

func newTraining(action, hours, weight float64, c Constants) Training {
	return Training{Action: action, Hours: hours, WeightKg: weight, consts: c}
}

// Duration returns the session length in hours
func (t *Training) Duration() float64 { return t.Hours }

// Distance returns the covered distance in km
func (t *Training) Distance() float64 { return t.distance }

// MeanSpeed returns the average speed in km/h
func (t *Training) MeanSpeed() float64 { return t.meanSpeed }

// Calories returns the estimated energy spent in kcal
func (t *Training) Calories() float64 { return t.calories }

// stepDistance is action * stepLength / 1000
func (t *Training) stepDistance(stepLength float64) float64 {
	return t.Action * stepLength / t.consts.MetersPerKm
}

func (t *Training) info(name string) InfoMessage {
	return InfoMessage{
		TrainingType: name,
		Duration:     t.Hours,
		Distance:     t.distance,
		Speed:        t.meanSpeed,
		Calories:     t.calories,
	}
}

// Running is a run measured in steps
type Running struct {
	Training
}

// NewRunning creates a running session and computes its metrics
func NewRunning(action, hours, weight float64) *Running {
	r := &Running{Training: newTraining(action, hours, weight, Default)}
	r.distance = r.stepDistance(r.consts.StepLength)
	r.meanSpeed = r.distance / r.Hours
	r.calories = RunningCalories(r.meanSpeed, r.WeightKg, r.Hours, r.consts)
	return r
}

// Name returns the canonical type name
func (r *Running) Name() string { return NameRunning }

// Info returns the summary of the session
func (r *Running) Info() InfoMessage { return r.info(NameRunning) }

// RunningCalories is (18*speed - 20) * weight / 1000 * hours * 60
func RunningCalories(speed, weight, hours float64, c Constants) float64 {
	return (c.RunSpeedMultiplier*speed - c.RunSpeedShift) *
		weight / c.MetersPerKm * hours * c.MinutesPerHour
}

// SportsWalking is a race walk measured in steps; height feeds the calorie formula
type SportsWalking struct {
	Training
	HeightCm float64
}

// NewSportsWalking creates a walking session and computes its metrics
func NewSportsWalking(action, hours, weight, height float64) *SportsWalking {
	w := &SportsWalking{Training: newTraining(action, hours, weight, Default), HeightCm: height}
	w.distance = w.stepDistance(w.consts.StepLength)
	w.meanSpeed = w.distance / w.Hours
	w.calories = WalkingCalories(w.meanSpeed, w.WeightKg, w.HeightCm, w.Hours, w.consts)
	return w
}

// Name returns the canonical type name
func (w *SportsWalking) Name() string { return NameWalking }

// Info returns the summary of the session
func (w *SportsWalking) Info() InfoMessage { return w.info(NameWalking) }

// WalkingCalories is (0.035*weight + floor(speed^2 / height) * 0.029*weight) * hours * 60.
// The speed term uses floor division: speeds below sqrt(height) contribute nothing.
func WalkingCalories(speed, weight, height, hours float64, c Constants) float64 {
	speedTerm := math.Floor(math.Pow(speed, c.WalkSpeedExponent) / height)
	return (c.WalkWeightMultiplier*weight +
		speedTerm*c.WalkSpeedMultiplier*weight) * hours * c.MinutesPerHour
}

// Swimming is a pool session measured in strokes
type Swimming struct {
	Training
	PoolLengthM float64
	PoolLaps    float64
}

// NewSwimming creates a swimming session and computes its metrics.
// Mean speed comes from pool length and laps, not from the stroke count.
func NewSwimming(action, hours, weight, poolLength, laps float64) *Swimming {
	s := &Swimming{
		Training:    newTraining(action, hours, weight, Default),
		PoolLengthM: poolLength,
		PoolLaps:    laps,
	}
	s.distance = s.stepDistance(s.consts.StrokeLength)
	s.meanSpeed = s.PoolLengthM * s.PoolLaps / s.consts.MetersPerKm / s.Hours
	s.calories = SwimmingCalories(s.meanSpeed, s.WeightKg, s.consts)
	return s
}

// Name returns the canonical type name
func (s *Swimming) Name() string { return NameSwimming }

// Info returns the summary of the session
func (s *Swimming) Info() InfoMessage { return s.info(NameSwimming) }

// SwimmingCalories is (speed + 1.1) * 2 * weight
func SwimmingCalories(speed, weight float64, c Constants) float64 {
	return (speed + c.SwimSpeedShift) * c.SwimWeightMultiplier * weight
}

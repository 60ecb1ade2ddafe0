package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"fittracker/internal/store"
	"fittracker/internal/workout"
)

// ErrNonFiniteResult is returned when a workout produces Inf or NaN,
// which happens for a zero duration
var ErrNonFiniteResult = errors.New("workout result is not finite")

// ErrInvalidReading is returned for a negative duration or a negative pool distance
var ErrInvalidReading = errors.New("invalid sensor reading")

// ErrPackagesFailed is returned by Run under SkipOnError when at least one package failed
var ErrPackagesFailed = errors.New("one or more packages failed")

// Recorder persists produced reports. *store.Store implements it.
type Recorder interface {
	SaveReport(ctx context.Context, r *store.Report) (int64, error)
}

// Result is a successfully processed package
type Result struct {
	Package Package
	Info    workout.InfoMessage
}

// Failure is a package that could not be processed
type Failure struct {
	Index   int
	Package Package
	Err     error
}

// RunResult summarizes one pass over a package list
type RunResult struct {
	RunID    uuid.UUID
	Results  []Result
	Failures []Failure
}

// TrackerService turns sensor packages into workout reports
type TrackerService struct {
	log      *slog.Logger
	policy   FailurePolicy
	recorder Recorder // nil when history is disabled
}

// NewTrackerService creates a new tracker service.
// recorder may be nil.
func NewTrackerService(log *slog.Logger, policy FailurePolicy, recorder Recorder) *TrackerService {
	if log == nil {
		log = slog.Default()
	}
	return &TrackerService{log: log, policy: policy, recorder: recorder}
}

// Process builds the workout for one package and returns its summary
func (t *TrackerService) Process(pkg Package) (workout.InfoMessage, error) {
	w, err := workout.Create(pkg.Code, pkg.Fields)
	if err != nil {
		return workout.InfoMessage{}, err
	}

	if w.Duration() < 0 {
		return workout.InfoMessage{}, fmt.Errorf("%w: %s duration %v is negative", ErrInvalidReading, pkg.Code, w.Duration())
	}
	if s, ok := w.(*workout.Swimming); ok && s.PoolLengthM*s.PoolLaps < 0 {
		return workout.InfoMessage{}, fmt.Errorf("%w: %s pool distance %v is negative", ErrInvalidReading, pkg.Code, s.PoolLengthM*s.PoolLaps)
	}

	info := w.Info()
	if !finite(info.Distance, info.Speed, info.Calories) {
		return workout.InfoMessage{}, fmt.Errorf("%w: %s with duration %v", ErrNonFiniteResult, pkg.Code, w.Duration())
	}
	return info, nil
}

// Run processes packages in order. emit, if non-nil, is called for each
// report as soon as it is produced.
//
// Under AbortOnError the first failure stops the run and is returned.
// Under SkipOnError failures are collected and ErrPackagesFailed is
// returned after the last package.
//
// A failure to save a report to the history always ends the run,
// whatever the policy.
func (t *TrackerService) Run(ctx context.Context, pkgs []Package, emit func(Result)) (*RunResult, error) {
	res := &RunResult{RunID: uuid.New()}
	log := t.log.With("run_id", res.RunID.String())
	log.Debug("run started", "packages", len(pkgs), "on_error", t.policy.String())

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		info, err := t.Process(pkg)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Index: i, Package: pkg, Err: err})
			if t.policy == AbortOnError {
				// The returned error is reported by the caller
				log.Debug("package failed, aborting run",
					"index", i, "code", pkg.Code, "fields", pkg.Fields, "error", err)
				return res, fmt.Errorf("package %d (%s): %w", i, pkg.Code, err)
			}
			log.Warn("package failed, skipping",
				"index", i, "code", pkg.Code, "fields", pkg.Fields, "error", err)
			continue
		}

		r := Result{Package: pkg, Info: info}
		res.Results = append(res.Results, r)
		if emit != nil {
			emit(r)
		}

		if t.recorder != nil {
			if err := t.record(ctx, res.RunID, r); err != nil {
				return res, err
			}
		}
		log.Debug("package processed", "index", i, "code", pkg.Code, "calories", info.Calories)
	}

	if len(res.Failures) > 0 {
		return res, fmt.Errorf("%w: %d of %d", ErrPackagesFailed, len(res.Failures), len(pkgs))
	}
	return res, nil
}

func (t *TrackerService) record(ctx context.Context, runID uuid.UUID, r Result) error {
	_, err := t.recorder.SaveReport(ctx, &store.Report{
		RunID:     runID,
		TypeCode:  r.Package.Code,
		TypeName:  r.Info.TrainingType,
		Duration:  r.Info.Duration,
		Distance:  r.Info.Distance,
		MeanSpeed: r.Info.Speed,
		Calories:  r.Info.Calories,
	})
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

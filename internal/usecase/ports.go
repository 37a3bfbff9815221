package usecase

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=ports_mocks_test.go -package=usecase_test

var (
	ErrCatalogUnavailable = errors.New("exercise catalog unavailable")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrInvalidWorkout     = errors.New("invalid workout")
	ErrWriteFailed        = errors.New("workout write failed")
)

// ListExerciseInput is what the presentation layer calls to load the catalog.
type ListExerciseInput interface {
	ListExercise(ctx context.Context)
}

// ListExerciseOutput receives the catalog. Exactly one of the two methods is
// called per ListExercise invocation.
type ListExerciseOutput interface {
	DisplayExercises(exercises []domain.Exercise)
	ExerciseListFailed(err error)
}

type RecordWorkoutInput interface {
	RecordWorkout(ctx context.Context, workout domain.WorkoutRecord)
}

type RecordWorkoutOutput interface {
	WorkoutRecordedWithResult(result Result)
}

// Result is the outcome of a workout submission. Workout is set on success,
// Err on failure, never both.
type Result struct {
	Workout *domain.WorkoutRecord
	Err     error
}

func (r Result) Succeeded() bool {
	return r.Err == nil
}

// State tracks a ListExercise instance: Idle -> Fetching -> Delivered | Failed.
type State int32

const (
	StateIdle State = iota
	StateFetching
	StateDelivered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateDelivered:
		return "delivered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

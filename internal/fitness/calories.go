package fitness

import (
	"errors"
	"fmt"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
)

var (
	ErrNegativeInput  = errors.New("calculation input must not be negative")
	ErrUnknownSetType = errors.New("unknown set type")
)

// CalculationError names the input that made a calculation impossible.
type CalculationError struct {
	Field string
	Err   error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// TrackCaloriesBurned estimates the calories burned by one set.
//
// Timed sets scale with duration (in seconds), repetition based sets
// (standard, bodyweight) scale with the number of repetitions. The other
// term is ignored. Negative inputs are rejected instead of producing a
// negative result.
func TrackCaloriesBurned(met, bodyWeight float64, setType domain.SetType, duration time.Duration, repetitions int) (float64, error) {
	switch {
	case met < 0:
		return 0, &CalculationError{Field: "met", Err: ErrNegativeInput}
	case bodyWeight < 0:
		return 0, &CalculationError{Field: "bodyWeight", Err: ErrNegativeInput}
	case !setType.IsValid():
		return 0, &CalculationError{Field: "setType", Err: ErrUnknownSetType}
	}

	if setType.IsTimed() {
		if duration < 0 {
			return 0, &CalculationError{Field: "duration", Err: ErrNegativeInput}
		}
		return met * bodyWeight * duration.Seconds(), nil
	}

	if repetitions < 0 {
		return 0, &CalculationError{Field: "repetitions", Err: ErrNegativeInput}
	}
	return met * bodyWeight * float64(repetitions), nil
}

// CoefficientLookup resolves the calorie coefficient of an exercise.
type CoefficientLookup func(exerciseID string) (float64, bool)

// WorkoutCalories sums the calories of every set in the workout and reports
// how many sets were priced. Exercises the lookup does not know contribute
// nothing.
func WorkoutCalories(lookup CoefficientLookup, bodyWeight float64, workout domain.WorkoutRecord) (float64, int, error) {
	var (
		total  float64
		priced int
	)
	for _, record := range workout.Exercises {
		met, ok := lookup(record.ExerciseID)
		if !ok {
			continue
		}
		for i, set := range record.Sets {
			cal, err := TrackCaloriesBurned(met, bodyWeight, set.Type, set.Duration, set.Repetitions)
			if err != nil {
				return 0, 0, fmt.Errorf("exercise [%s] set [%d]: %w", record.ExerciseID, i, err)
			}
			total += cal
			priced++
		}
	}
	return total, priced, nil
}

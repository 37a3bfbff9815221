package domain

import (
	"errors"
	"time"
)

var ErrNegativeWorkoutDuration = errors.New("workout duration must not be negative")

// WorkoutRecord is a completed workout. It is persisted once and read-only afterwards.
type WorkoutRecord struct {
	ID             string           `bson:"_id" json:"id"`
	Date           time.Time        `bson:"date" json:"date"`
	Duration       time.Duration    `bson:"duration" json:"duration"`
	Notes          string           `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises      []ExerciseRecord `bson:"exercises" json:"exercises"`
	CaloriesBurned float64          `bson:"caloriesBurned" json:"caloriesBurned"`
}

func (w WorkoutRecord) Validate() error {
	if w.Duration < 0 {
		return ErrNegativeWorkoutDuration
	}
	return nil
}

// Clone returns a deep copy of the workout.
func (w WorkoutRecord) Clone() WorkoutRecord {
	out := w
	if w.Exercises != nil {
		out.Exercises = make([]ExerciseRecord, len(w.Exercises))
		for i, ex := range w.Exercises {
			out.Exercises[i] = ExerciseRecord{
				ExerciseID: ex.ExerciseID,
				Sets:       CloneReps(ex.Sets),
			}
		}
	}
	return out
}

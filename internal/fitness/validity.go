package fitness

import "alcyxob/fitness-tracker/internal/domain"

// IsValid reports whether set can be logged against the exercise's record
// for the current session. It never mutates its arguments.
//
// Rules:
//   - the set type is known and the structural fields are non-negative
//   - timed sets need a positive duration, repetition sets positive repetitions
//   - bodyweight sets and bodyweight-only exercises carry no external weight
//   - the set belongs to the record's exercise
//   - once a record holds sets, timed and repetition sets are not mixed
func IsValid(set domain.Rep, record domain.ExerciseRecord, exercise domain.Exercise) bool {
	if !set.Type.IsValid() {
		return false
	}
	if set.Repetitions < 0 || set.Weight < 0 || set.Duration < 0 {
		return false
	}

	if set.Type.IsTimed() {
		if set.Duration <= 0 {
			return false
		}
	} else if set.Repetitions <= 0 {
		return false
	}

	if set.Weight > 0 && (set.Type == domain.SetTypeBodyweight || exercise.BodyweightOnly) {
		return false
	}

	if !sameExercise(set.ExerciseID, record.ExerciseID) || !sameExercise(record.ExerciseID, exercise.ID) {
		return false
	}

	if len(record.Sets) > 0 && record.Sets[0].Type.IsTimed() != set.Type.IsTimed() {
		return false
	}

	return true
}

// empty ids are unknown and never conflict
func sameExercise(a, b string) bool {
	return a == "" || b == "" || a == b
}

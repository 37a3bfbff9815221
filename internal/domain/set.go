package domain

import "time"

// SetType classifies a logged set and controls how calories and validity are computed.
type SetType string

const (
	SetTypeStandard   SetType = "standard"   // Repetitions with external weight
	SetTypeBodyweight SetType = "bodyweight" // Repetitions, external weight ignored
	SetTypeTimed      SetType = "timed"      // Duration based (cardio, holds)
)

func (st SetType) String() string {
	return string(st)
}

func (st SetType) IsValid() bool {
	switch st {
	case SetTypeStandard, SetTypeBodyweight, SetTypeTimed:
		return true
	default:
		return false
	}
}

// IsTimed reports whether calories for this set type scale with duration
// instead of repetitions.
func (st SetType) IsTimed() bool {
	return st == SetTypeTimed
}

// Rep is a single logged set of an exercise.
type Rep struct {
	ExerciseID  string        `bson:"exerciseId,omitempty" json:"exerciseId,omitempty"`
	Type        SetType       `bson:"type" json:"type"`
	Repetitions int           `bson:"repetitions" json:"repetitions"`
	Weight      float64       `bson:"weight" json:"weight"`
	Duration    time.Duration `bson:"duration" json:"duration"` // nanoseconds on the wire
}

// ExerciseRecord holds the sets logged for one exercise during a workout session.
type ExerciseRecord struct {
	ExerciseID string `bson:"exerciseId" json:"exerciseId"`
	Sets       []Rep  `bson:"sets" json:"sets"`
}

// Append adds a set to the end of the record.
func (r *ExerciseRecord) Append(set Rep) {
	r.Sets = append(r.Sets, set)
}

// CloneReps returns a copy of sets so callers never share backing arrays.
func CloneReps(sets []Rep) []Rep {
	if sets == nil {
		return nil
	}
	return append(make([]Rep, 0, len(sets)), sets...)
}

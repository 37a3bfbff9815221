package domain

import "time"

// SaveDataRecord is the persisted progress history for one exercise.
// ExerciseName is the natural key: at most one record exists per name.
type SaveDataRecord struct {
	ExerciseName string    `bson:"_id" json:"exerciseName"`
	Sets         []Rep     `bson:"sets" json:"sets"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (r SaveDataRecord) Clone() SaveDataRecord {
	r.Sets = CloneReps(r.Sets)
	return r
}

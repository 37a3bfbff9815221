package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"time"
)

// --- DTOs for API (Data Transfer Objects) ---
// Durations travel as seconds.

type RepDTO struct {
	ExerciseID      string  `json:"exerciseId,omitempty"`
	Type            string  `json:"type" binding:"required"`
	Repetitions     int     `json:"repetitions"`
	Weight          float64 `json:"weight"`
	DurationSeconds float64 `json:"durationSeconds"`
}

type ExerciseRecordDTO struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Sets       []RepDTO `json:"sets" binding:"dive"`
}

type RecordWorkoutRequest struct {
	ID              string              `json:"id"`
	Date            time.Time           `json:"date"`
	DurationSeconds float64             `json:"durationSeconds"`
	Notes           string              `json:"notes"`
	Exercises       []ExerciseRecordDTO `json:"exercises" binding:"dive"`
	CaloriesBurned  float64             `json:"caloriesBurned"`
}

type WorkoutResponse struct {
	ID              string              `json:"id"`
	Date            time.Time           `json:"date"`
	DurationSeconds float64             `json:"durationSeconds"`
	Notes           string              `json:"notes,omitempty"`
	Exercises       []ExerciseRecordDTO `json:"exercises"`
	CaloriesBurned  float64             `json:"caloriesBurned"`
}

type CreateSaveDataRequest struct {
	ExerciseName string   `json:"exerciseName" binding:"required"`
	Sets         []RepDTO `json:"sets" binding:"dive"`
}

type SetsRequest struct {
	Sets []RepDTO `json:"sets" binding:"dive"`
}

type SaveDataResponse struct {
	ExerciseName string    `json:"exerciseName"`
	Sets         []RepDTO  `json:"sets"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProgressResponse struct {
	SaveDataResponse
	Created bool `json:"created"`
}

type CaloriesRequest struct {
	// ExerciseID, when set, takes the coefficient from the catalog.
	ExerciseID string   `json:"exerciseId"`
	Met        *float64 `json:"met"`
	// BodyWeight defaults to the stored BMI profile weight.
	BodyWeight      *float64 `json:"bodyWeight"`
	SetType         string   `json:"setType" binding:"required"`
	DurationSeconds float64  `json:"durationSeconds"`
	Repetitions     int      `json:"repetitions"`
}

type CaloriesResponse struct {
	Calories float64 `json:"calories"`
}

type ValidateSetRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Set        RepDTO   `json:"set"`
	Previous   []RepDTO `json:"previous" binding:"dive"`
}

type ValidateSetResponse struct {
	Valid bool `json:"valid"`
}

type ExerciseImagesResponse struct {
	ID     string   `json:"id"`
	Images []string `json:"images"`
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func (r RepDTO) toDomain() domain.Rep {
	return domain.Rep{
		ExerciseID:  r.ExerciseID,
		Type:        domain.SetType(r.Type),
		Repetitions: r.Repetitions,
		Weight:      r.Weight,
		Duration:    secondsToDuration(r.DurationSeconds),
	}
}

func repsToDomain(reps []RepDTO) []domain.Rep {
	out := make([]domain.Rep, len(reps))
	for i, r := range reps {
		out[i] = r.toDomain()
	}
	return out
}

func MapRepsToResponse(reps []domain.Rep) []RepDTO {
	out := make([]RepDTO, len(reps))
	for i, r := range reps {
		out[i] = RepDTO{
			ExerciseID:      r.ExerciseID,
			Type:            r.Type.String(),
			Repetitions:     r.Repetitions,
			Weight:          r.Weight,
			DurationSeconds: r.Duration.Seconds(),
		}
	}
	return out
}

func (req RecordWorkoutRequest) toDomain() domain.WorkoutRecord {
	exercises := make([]domain.ExerciseRecord, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.ExerciseRecord{
			ExerciseID: ex.ExerciseID,
			Sets:       repsToDomain(ex.Sets),
		}
	}
	return domain.WorkoutRecord{
		ID:             req.ID,
		Date:           req.Date,
		Duration:       secondsToDuration(req.DurationSeconds),
		Notes:          req.Notes,
		Exercises:      exercises,
		CaloriesBurned: req.CaloriesBurned,
	}
}

func MapWorkoutToResponse(w *domain.WorkoutRecord) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	exercises := make([]ExerciseRecordDTO, len(w.Exercises))
	for i, ex := range w.Exercises {
		exercises[i] = ExerciseRecordDTO{
			ExerciseID: ex.ExerciseID,
			Sets:       MapRepsToResponse(ex.Sets),
		}
	}
	return WorkoutResponse{
		ID:              w.ID,
		Date:            w.Date,
		DurationSeconds: w.Duration.Seconds(),
		Notes:           w.Notes,
		Exercises:       exercises,
		CaloriesBurned:  w.CaloriesBurned,
	}
}

func MapWorkoutsToResponse(workouts []domain.WorkoutRecord) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func MapSaveDataToResponse(r *domain.SaveDataRecord) SaveDataResponse {
	if r == nil {
		return SaveDataResponse{}
	}
	return SaveDataResponse{
		ExerciseName: r.ExerciseName,
		Sets:         MapRepsToResponse(r.Sets),
		UpdatedAt:    r.UpdatedAt,
	}
}

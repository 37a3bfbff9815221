package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer. Adapters return these (possibly
// wrapped) so services can tell expected outcomes from storage failures.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrDuplicate     = RepositoryError("duplicate record")
	ErrWriteFailed   = RepositoryError("write failed")
	ErrInvalidRecord = RepositoryError("invalid record")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks alcyxob/fitness-tracker/internal/repository ExerciseRepository,WorkoutRepository,SaveDataRepository

// ExerciseRepository gives read access to the exercise catalog.
type ExerciseRepository interface {
	FetchExercises(ctx context.Context) ([]domain.ExerciseTemplate, error)
	// FetchExercise returns ErrNotFound when the catalog has no such id.
	FetchExercise(ctx context.Context, id string) (*domain.ExerciseTemplate, error)
	// ImageBaseURL is the prefix catalog image names are resolved against.
	ImageBaseURL() string
}

// CatalogWriter is implemented by catalog stores that accept seed imports.
type CatalogWriter interface {
	UpsertTemplates(ctx context.Context, templates []domain.ExerciseTemplate) (int, error)
}

// ImageLookupRepository maps image names to resolvable URLs,
// independent of where the exercise data lives.
type ImageLookupRepository interface {
	LookupImages(ctx context.Context, names []string) ([]string, error)
}

// WorkoutRepository persists completed workouts.
type WorkoutRepository interface {
	// RecordWorkout stores the workout and returns the persisted value.
	// Storage failures are reported as ErrWriteFailed.
	RecordWorkout(ctx context.Context, record domain.WorkoutRecord) (*domain.WorkoutRecord, error)
	ListWorkouts(ctx context.Context) ([]domain.WorkoutRecord, error)
}

// SaveDataRepository owns the authoritative set of save-data records,
// keyed by exercise name.
type SaveDataRepository interface {
	// Create fails with ErrDuplicate when a record for the name exists.
	Create(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error)
	// Update fails with ErrNotFound when no record for the name exists.
	Update(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error)
	// Read returns ErrNotFound for an unknown name.
	Read(ctx context.Context, exerciseName string) (*domain.SaveDataRecord, error)
	ReadAll(ctx context.Context) ([]domain.SaveDataRecord, error)
	// Upsert creates the record or replaces an existing one in a single
	// atomic step. created reports which of the two happened.
	Upsert(ctx context.Context, record domain.SaveDataRecord) (_ *domain.SaveDataRecord, created bool, err error)
	// Append adds sets to the end of the record's history, creating the
	// record when missing, in a single atomic step.
	Append(ctx context.Context, exerciseName string, sets []domain.Rep) (_ *domain.SaveDataRecord, created bool, err error)
}

// BMIRepository stores the single current body-metrics profile.
type BMIRepository interface {
	// GetBMI returns ErrNotFound until a profile has been saved.
	GetBMI(ctx context.Context) (*domain.BMI, error)
	SaveBMI(ctx context.Context, bmi domain.BMI) (*domain.BMI, error)
}

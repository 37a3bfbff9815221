package memory

import (
	"context"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository("https://img.example.com/",
		domain.ExerciseTemplate{ID: "e2", Name: "Squat", CaloriesCoefficient: 0.2},
		domain.ExerciseTemplate{ID: "e1", Name: "Push Up", CaloriesCoefficient: 0.05, Tags: []string{"chest"}},
	)
	assert.Equal(t, "https://img.example.com/", repo.ImageBaseURL())

	all, err := repo.FetchExercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e2", all[0].ID)
	assert.Equal(t, "e1", all[1].ID)

	pushUp, err := repo.FetchExercise(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0.05, pushUp.CaloriesCoefficient)

	_, err = repo.FetchExercise(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// replacing keeps the original position
	n, err := repo.UpsertTemplates(ctx, []domain.ExerciseTemplate{
		{ID: "e2", Name: "Back Squat", CaloriesCoefficient: 0.25},
		{ID: "e3", Name: "Plank", CaloriesCoefficient: 0.01},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err = repo.FetchExercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Back Squat", all[0].Name)
	assert.Equal(t, "e3", all[2].ID)

	_, err = repo.UpsertTemplates(ctx, []domain.ExerciseTemplate{{Name: "no id"}})
	assert.ErrorIs(t, err, repository.ErrInvalidRecord)
}

func TestWorkoutRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutRepository()

	_, err := repo.RecordWorkout(ctx, domain.WorkoutRecord{})
	require.ErrorIs(t, err, repository.ErrWriteFailed)

	w, err := repo.RecordWorkout(ctx, domain.WorkoutRecord{ID: "w1", Notes: "legs"})
	require.NoError(t, err)
	assert.Equal(t, "legs", w.Notes)

	_, err = repo.RecordWorkout(ctx, domain.WorkoutRecord{ID: "w1"})
	require.ErrorIs(t, err, repository.ErrWriteFailed)

	list, err := repo.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "w1", list[0].ID)
}

func TestBMIRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBMIRepository()

	_, err := repo.GetBMI(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	saved, err := repo.SaveBMI(ctx, domain.BMI{Weight: 70, Height: 175})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := repo.GetBMI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.Weight)
}

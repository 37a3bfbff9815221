package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDataRepository_CreateUpdateRead(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveDataRepository()

	_, err := repo.Read(ctx, "Squat")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(ctx, domain.SaveDataRecord{ExerciseName: "Squat"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	sets := []domain.Rep{{Type: domain.SetTypeStandard, Repetitions: 5, Weight: 100}}
	created, err := repo.Create(ctx, domain.SaveDataRecord{ExerciseName: "Squat", Sets: sets})
	require.NoError(t, err)
	assert.Equal(t, "Squat", created.ExerciseName)
	assert.False(t, created.UpdatedAt.IsZero())

	_, err = repo.Create(ctx, domain.SaveDataRecord{ExerciseName: "Squat"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	sets2 := []domain.Rep{{Type: domain.SetTypeStandard, Repetitions: 3, Weight: 110}}
	_, err = repo.Update(ctx, domain.SaveDataRecord{ExerciseName: "Squat", Sets: sets2})
	require.NoError(t, err)

	read, err := repo.Read(ctx, "Squat")
	require.NoError(t, err)
	assert.Equal(t, sets2, read.Sets)

	// returned values are copies
	read.Sets[0].Weight = 1
	again, err := repo.Read(ctx, "Squat")
	require.NoError(t, err)
	assert.Equal(t, 110.0, again.Sets[0].Weight)
}

func TestSaveDataRepository_ReadAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveDataRepository()

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, name := range []string{"Squat", "Bench", "Deadlift"} {
		_, err := repo.Create(ctx, domain.SaveDataRecord{ExerciseName: name})
		require.NoError(t, err)
	}

	all, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bench", all[0].ExerciseName)
	assert.Equal(t, "Deadlift", all[1].ExerciseName)
	assert.Equal(t, "Squat", all[2].ExerciseName)
}

func TestSaveDataRepository_InvalidName(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveDataRepository()

	_, err := repo.Create(ctx, domain.SaveDataRecord{})
	assert.ErrorIs(t, err, repository.ErrInvalidRecord)
	_, _, err = repo.Upsert(ctx, domain.SaveDataRecord{})
	assert.ErrorIs(t, err, repository.ErrInvalidRecord)
}

func TestSaveDataRepository_ConcurrentUpsertCreatesOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveDataRepository()

	var created atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(reps int) {
			defer wg.Done()
			_, wasCreated, err := repo.Upsert(ctx, domain.SaveDataRecord{
				ExerciseName: "Squat",
				Sets:         []domain.Rep{{Type: domain.SetTypeStandard, Repetitions: reps}},
			})
			assert.NoError(t, err)
			if wasCreated {
				created.Add(1)
			}
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveDataRepository_Append(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveDataRepository()

	first := []domain.Rep{{Type: domain.SetTypeStandard, Repetitions: 5, Weight: 100}}
	rec, created, err := repo.Append(ctx, "Squat", first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, first, rec.Sets)

	second := []domain.Rep{{Type: domain.SetTypeStandard, Repetitions: 4, Weight: 105}}
	rec, created, err = repo.Append(ctx, "Squat", second)
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, rec.Sets, 2)
	assert.Equal(t, 105.0, rec.Sets[1].Weight)

	_, _, err = repo.Append(ctx, "", first)
	assert.ErrorIs(t, err, repository.ErrInvalidRecord)
}

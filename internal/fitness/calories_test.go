package fitness_test

import (
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/fitness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackCaloriesBurned_Bodyweight(t *testing.T) {
	cal, err := fitness.TrackCaloriesBurned(0.1, 70, domain.SetTypeBodyweight, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, cal, 1e-9)
}

func TestTrackCaloriesBurned_Timed(t *testing.T) {
	cal, err := fitness.TrackCaloriesBurned(0.02, 80, domain.SetTypeTimed, 90*time.Second, 12)
	require.NoError(t, err)
	assert.InDelta(t, 144.0, cal, 1e-9)
}

func TestTrackCaloriesBurned_TimedScalesWithDuration(t *testing.T) {
	one, err := fitness.TrackCaloriesBurned(0.03, 75, domain.SetTypeTimed, 30*time.Second, 0)
	require.NoError(t, err)
	three, err := fitness.TrackCaloriesBurned(0.03, 75, domain.SetTypeTimed, 90*time.Second, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3*one, three, 1e-9)

	// repetitions do not matter for timed sets
	withReps, err := fitness.TrackCaloriesBurned(0.03, 75, domain.SetTypeTimed, 30*time.Second, 50)
	require.NoError(t, err)
	assert.Equal(t, one, withReps)
}

func TestTrackCaloriesBurned_RepetitionsIgnoreDuration(t *testing.T) {
	for _, setType := range []domain.SetType{domain.SetTypeStandard, domain.SetTypeBodyweight} {
		t.Run(setType.String(), func(t *testing.T) {
			five, err := fitness.TrackCaloriesBurned(0.5, 60, setType, 0, 5)
			require.NoError(t, err)
			ten, err := fitness.TrackCaloriesBurned(0.5, 60, setType, time.Hour, 10)
			require.NoError(t, err)
			assert.InDelta(t, 2*five, ten, 1e-9)

			fiveLong, err := fitness.TrackCaloriesBurned(0.5, 60, setType, 10*time.Minute, 5)
			require.NoError(t, err)
			assert.Equal(t, five, fiveLong)
		})
	}
}

func TestTrackCaloriesBurned_NonNegative(t *testing.T) {
	mets := []float64{0, 0.01, 0.5, 8}
	weights := []float64{0, 45.5, 70, 140}
	reps := []int{0, 1, 12}
	durations := []time.Duration{0, time.Second, 5 * time.Minute}
	types := []domain.SetType{domain.SetTypeStandard, domain.SetTypeBodyweight, domain.SetTypeTimed}

	for _, met := range mets {
		for _, w := range weights {
			for _, r := range reps {
				for _, d := range durations {
					for _, st := range types {
						cal, err := fitness.TrackCaloriesBurned(met, w, st, d, r)
						require.NoError(t, err)
						assert.GreaterOrEqual(t, cal, 0.0)
					}
				}
			}
		}
	}
}

func TestTrackCaloriesBurned_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		met     float64
		weight  float64
		setType domain.SetType
		dur     time.Duration
		reps    int
		field   string
		wantErr error
	}{
		{"negative met", -0.1, 70, domain.SetTypeStandard, 0, 10, "met", fitness.ErrNegativeInput},
		{"negative weight", 0.1, -70, domain.SetTypeStandard, 0, 10, "bodyWeight", fitness.ErrNegativeInput},
		{"negative reps", 0.1, 70, domain.SetTypeStandard, 0, -1, "repetitions", fitness.ErrNegativeInput},
		{"negative duration", 0.1, 70, domain.SetTypeTimed, -time.Second, 0, "duration", fitness.ErrNegativeInput},
		{"unknown type", 0.1, 70, domain.SetType("drop"), 0, 10, "setType", fitness.ErrUnknownSetType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := fitness.TrackCaloriesBurned(tt.met, tt.weight, tt.setType, tt.dur, tt.reps)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, cal)

			var calcErr *fitness.CalculationError
			require.ErrorAs(t, err, &calcErr)
			assert.Equal(t, tt.field, calcErr.Field)
		})
	}
}

func TestWorkoutCalories(t *testing.T) {
	coefficients := map[string]float64{
		"push_up": 0.1,
		"run":     0.02,
	}
	lookup := func(id string) (float64, bool) {
		met, ok := coefficients[id]
		return met, ok
	}

	workout := domain.WorkoutRecord{
		Exercises: []domain.ExerciseRecord{
			{ExerciseID: "push_up", Sets: []domain.Rep{
				{Type: domain.SetTypeBodyweight, Repetitions: 10},
				{Type: domain.SetTypeBodyweight, Repetitions: 5},
			}},
			{ExerciseID: "run", Sets: []domain.Rep{
				{Type: domain.SetTypeTimed, Duration: time.Minute},
			}},
			{ExerciseID: "unknown", Sets: []domain.Rep{
				{Type: domain.SetTypeStandard, Repetitions: 100},
			}},
		},
	}

	total, priced, err := fitness.WorkoutCalories(lookup, 70, workout)
	require.NoError(t, err)
	// 0.1*70*15 + 0.02*70*60
	assert.InDelta(t, 105.0+84.0, total, 1e-9)
	assert.Equal(t, 3, priced)

	workout.Exercises[0].Sets[0].Repetitions = -1
	_, _, err = fitness.WorkoutCalories(lookup, 70, workout)
	assert.ErrorIs(t, err, fitness.ErrNegativeInput)
}

func TestWorkoutCalories_NothingPriced(t *testing.T) {
	lookup := func(string) (float64, bool) { return 0, false }
	workout := domain.WorkoutRecord{
		Exercises: []domain.ExerciseRecord{
			{ExerciseID: "rowing", Sets: []domain.Rep{
				{Type: domain.SetTypeTimed, Duration: time.Minute},
			}},
		},
	}

	total, priced, err := fitness.WorkoutCalories(lookup, 70, workout)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, priced)
}

package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"fmt"
	"sort"
	"sync"
)

type workoutRepository struct {
	mu       sync.RWMutex
	workouts map[string]domain.WorkoutRecord
}

func NewWorkoutRepository() *workoutRepository {
	return &workoutRepository{
		workouts: make(map[string]domain.WorkoutRecord),
	}
}

// RecordWorkout stores the workout once. Recording an id twice is a write failure.
func (r *workoutRepository) RecordWorkout(_ context.Context, record domain.WorkoutRecord) (*domain.WorkoutRecord, error) {
	if record.ID == "" {
		return nil, fmt.Errorf("%w: workout id is required", repository.ErrWriteFailed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[record.ID]; ok {
		return nil, fmt.Errorf("%w: workout [%s] already recorded", repository.ErrWriteFailed, record.ID)
	}
	r.workouts[record.ID] = record.Clone()

	out := record.Clone()
	return &out, nil
}

// ListWorkouts returns workouts newest first.
func (r *workoutRepository) ListWorkouts(_ context.Context) ([]domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WorkoutRecord, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

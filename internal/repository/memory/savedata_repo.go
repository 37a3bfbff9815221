package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sort"
	"sync"
	"time"
)

type saveDataRepository struct {
	mu      sync.RWMutex
	records map[string]domain.SaveDataRecord
	now     func() time.Time
}

func NewSaveDataRepository() *saveDataRepository {
	return &saveDataRepository{
		records: make(map[string]domain.SaveDataRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *saveDataRepository) Create(_ context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error) {
	if record.ExerciseName == "" {
		return nil, repository.ErrInvalidRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ExerciseName]; ok {
		return nil, repository.ErrDuplicate
	}
	return r.store(record), nil
}

func (r *saveDataRepository) Update(_ context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ExerciseName]; !ok {
		return nil, repository.ErrNotFound
	}
	return r.store(record), nil
}

func (r *saveDataRepository) Read(_ context.Context, exerciseName string) (*domain.SaveDataRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[exerciseName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	record = record.Clone()
	return &record, nil
}

// ReadAll returns records sorted by exercise name.
func (r *saveDataRepository) ReadAll(_ context.Context) ([]domain.SaveDataRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SaveDataRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExerciseName < out[j].ExerciseName
	})
	return out, nil
}

func (r *saveDataRepository) Upsert(_ context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, bool, error) {
	if record.ExerciseName == "" {
		return nil, false, repository.ErrInvalidRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.records[record.ExerciseName]
	return r.store(record), !exists, nil
}

func (r *saveDataRepository) Append(_ context.Context, exerciseName string, sets []domain.Rep) (*domain.SaveDataRecord, bool, error) {
	if exerciseName == "" {
		return nil, false, repository.ErrInvalidRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[exerciseName]
	if !exists {
		record = domain.SaveDataRecord{ExerciseName: exerciseName}
	}
	record.Sets = append(domain.CloneReps(record.Sets), sets...)
	return r.store(record), !exists, nil
}

// store must be called with mu held.
func (r *saveDataRepository) store(record domain.SaveDataRecord) *domain.SaveDataRecord {
	record = record.Clone()
	record.UpdatedAt = r.now()
	r.records[record.ExerciseName] = record

	out := record.Clone()
	return &out
}

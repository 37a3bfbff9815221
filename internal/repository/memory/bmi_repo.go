package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sync"
	"time"
)

type bmiRepository struct {
	mu  sync.RWMutex
	bmi *domain.BMI
}

func NewBMIRepository() *bmiRepository {
	return &bmiRepository{}
}

func (r *bmiRepository) GetBMI(_ context.Context) (*domain.BMI, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.bmi == nil {
		return nil, repository.ErrNotFound
	}
	out := *r.bmi
	return &out, nil
}

func (r *bmiRepository) SaveBMI(_ context.Context, bmi domain.BMI) (*domain.BMI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bmi.UpdatedAt = time.Now().UTC()
	r.bmi = &bmi
	out := bmi
	return &out, nil
}

package usecase

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// ListExercise loads the whole catalog and pushes it to its output in one
// delivery. The output is not owned: callers bind it with SetOutput and
// detach with SetOutput(nil), and an unbound output turns delivery into a no-op.
type ListExercise struct {
	exerciseRepo repository.ExerciseRepository
	metrics      *metrics.Manager
	log          logrus.FieldLogger

	mu     sync.RWMutex
	output ListExerciseOutput

	state atomic.Int32
}

var _ ListExerciseInput = (*ListExercise)(nil)

func NewListExercise(
	exerciseRepo repository.ExerciseRepository,
	metricsManager *metrics.Manager,
	log logrus.FieldLogger,
	output ListExerciseOutput,
) *ListExercise {
	return &ListExercise{
		exerciseRepo: exerciseRepo,
		metrics:      metricsManager,
		log:          log.WithField("usecase", "list_exercise"),
		output:       output,
	}
}

func (uc *ListExercise) SetOutput(output ListExerciseOutput) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.output = output
}

func (uc *ListExercise) State() State {
	return State(uc.state.Load())
}

func (uc *ListExercise) ListExercise(ctx context.Context) {
	uc.state.Store(int32(StateFetching))

	templates, err := uc.exerciseRepo.FetchExercises(ctx)
	if err != nil {
		uc.state.Store(int32(StateFailed))
		uc.metrics.CounterCatalogDeliveries.WithLabelValues(metrics.OutcomeFailure).Inc()
		uc.log.WithError(err).Error("fetch exercise catalog")
		if out := uc.currentOutput(); out != nil {
			out.ExerciseListFailed(fmt.Errorf("%w: %w", ErrCatalogUnavailable, err))
		}
		return
	}

	exercises := make([]domain.Exercise, 0, len(templates))
	for _, tmpl := range templates {
		exercises = append(exercises, domain.ExerciseFromTemplate(tmpl))
	}

	uc.state.Store(int32(StateDelivered))
	uc.metrics.CounterCatalogDeliveries.WithLabelValues(metrics.OutcomeSuccess).Inc()
	uc.log.Debugf("delivering %d exercises", len(exercises))

	if out := uc.currentOutput(); out != nil {
		out.DisplayExercises(exercises)
	}
}

// FetchExercise returns a single catalog entry in display form.
func (uc *ListExercise) FetchExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	tmpl, err := uc.exerciseRepo.FetchExercise(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	exercise := domain.ExerciseFromTemplate(*tmpl)
	return &exercise, nil
}

func (uc *ListExercise) currentOutput() ListExerciseOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.output == nil {
		uc.log.Debug("no output bound, dropping delivery")
	}
	return uc.output
}

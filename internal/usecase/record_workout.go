package usecase

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/fitness"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RecordWorkout persists a finished workout and reports the outcome to its
// output as a Result. Failures never leave the use case any other way.
type RecordWorkout struct {
	workoutRepo     repository.WorkoutRepository
	exerciseRepo    repository.ExerciseRepository
	bmiService      service.BMIService
	saveDataService service.SaveDataService
	metrics         *metrics.Manager
	log             logrus.FieldLogger

	mu     sync.RWMutex
	output RecordWorkoutOutput
}

var _ RecordWorkoutInput = (*RecordWorkout)(nil)

func NewRecordWorkout(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	bmiService service.BMIService,
	saveDataService service.SaveDataService,
	metricsManager *metrics.Manager,
	log logrus.FieldLogger,
	output RecordWorkoutOutput,
) *RecordWorkout {
	return &RecordWorkout{
		workoutRepo:     workoutRepo,
		exerciseRepo:    exerciseRepo,
		bmiService:      bmiService,
		saveDataService: saveDataService,
		metrics:         metricsManager,
		log:             log.WithField("usecase", "record_workout"),
		output:          output,
	}
}

func (uc *RecordWorkout) SetOutput(output RecordWorkoutOutput) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.output = output
}

func (uc *RecordWorkout) RecordWorkout(ctx context.Context, workout domain.WorkoutRecord) {
	result := uc.record(ctx, workout.Clone())

	if result.Succeeded() {
		uc.metrics.CounterWorkoutsRecorded.WithLabelValues(metrics.OutcomeSuccess).Inc()
	} else {
		uc.metrics.CounterWorkoutsRecorded.WithLabelValues(metrics.OutcomeFailure).Inc()
	}

	uc.mu.RLock()
	out := uc.output
	uc.mu.RUnlock()

	if out == nil {
		uc.log.Debug("no output bound, dropping result")
		return
	}
	out.WorkoutRecordedWithResult(result)
}

func (uc *RecordWorkout) record(ctx context.Context, workout domain.WorkoutRecord) Result {
	if err := workout.Validate(); err != nil {
		return Result{Err: fmt.Errorf("%w: %w", ErrInvalidWorkout, err)}
	}

	catalog := uc.catalog(ctx)
	if err := validateSets(workout, catalog); err != nil {
		return Result{Err: err}
	}

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now().UTC()
	}
	uc.computeCalories(ctx, &workout, catalog)

	saved, err := uc.workoutRepo.RecordWorkout(ctx, workout)
	if err != nil {
		uc.log.WithError(err).Errorf("record workout [%s]", workout.ID)
		return Result{Err: fmt.Errorf("%w: %w", ErrWriteFailed, err)}
	}

	uc.foldIntoSaveData(ctx, *saved, catalog)
	uc.log.Infof("workout [%s] recorded, %d exercises, %.1f kcal", saved.ID, len(saved.Exercises), saved.CaloriesBurned)
	return Result{Workout: saved}
}

// catalog returns templates by id. A failing catalog is not fatal for
// recording: validation falls back to catalog-independent rules and
// calories are left as submitted.
func (uc *RecordWorkout) catalog(ctx context.Context) map[string]domain.ExerciseTemplate {
	templates, err := uc.exerciseRepo.FetchExercises(ctx)
	if err != nil {
		uc.log.WithError(err).Warn("catalog unavailable while recording workout")
		return nil
	}
	byID := make(map[string]domain.ExerciseTemplate, len(templates))
	for _, tmpl := range templates {
		byID[tmpl.ID] = tmpl
	}
	return byID
}

func validateSets(workout domain.WorkoutRecord, catalog map[string]domain.ExerciseTemplate) error {
	for _, ex := range workout.Exercises {
		exercise := domain.Exercise{ID: ex.ExerciseID}
		if tmpl, ok := catalog[ex.ExerciseID]; ok {
			exercise = domain.ExerciseFromTemplate(tmpl)
		}

		session := domain.ExerciseRecord{ExerciseID: ex.ExerciseID}
		for i, set := range ex.Sets {
			if !fitness.IsValid(set, session, exercise) {
				return fmt.Errorf("%w: exercise [%s] set [%d] is not valid", ErrInvalidWorkout, ex.ExerciseID, i)
			}
			session.Append(set)
		}
	}
	return nil
}

func (uc *RecordWorkout) computeCalories(ctx context.Context, workout *domain.WorkoutRecord, catalog map[string]domain.ExerciseTemplate) {
	if catalog == nil {
		return
	}

	weight, found, err := uc.bmiService.BodyWeightKilograms(ctx)
	if err != nil {
		uc.log.WithError(err).Warn("body weight unavailable, keeping submitted calories")
		return
	}
	if !found {
		uc.log.Debug("no body metrics profile, keeping submitted calories")
		return
	}

	lookup := func(exerciseID string) (float64, bool) {
		tmpl, ok := catalog[exerciseID]
		return tmpl.CaloriesCoefficient, ok
	}
	calories, priced, err := fitness.WorkoutCalories(lookup, weight, *workout)
	if err != nil {
		uc.log.WithError(err).Warn("calculate workout calories")
		return
	}
	if priced == 0 {
		uc.log.Debug("no catalog coefficients for the recorded sets, keeping submitted calories")
		return
	}
	workout.CaloriesBurned = calories
}

// foldIntoSaveData appends the recorded sets to each exercise's progress
// history. Save data is keyed by exercise name; ids are used when the
// catalog does not know the exercise.
func (uc *RecordWorkout) foldIntoSaveData(ctx context.Context, workout domain.WorkoutRecord, catalog map[string]domain.ExerciseTemplate) {
	for _, ex := range workout.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}

		name := ex.ExerciseID
		if tmpl, ok := catalog[ex.ExerciseID]; ok && tmpl.Name != "" {
			name = tmpl.Name
		}

		if _, _, err := uc.saveDataService.AppendProgress(ctx, name, ex.Sets); err != nil {
			uc.log.WithError(err).Warnf("fold workout [%s] into save data for [%s]", workout.ID, name)
		}
	}
}

package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/usecase"
)

// exerciseListPresenter collects the single delivery of a ListExercise run
// for one request.
type exerciseListPresenter struct {
	exercises []domain.Exercise
	err       error
}

func (p *exerciseListPresenter) DisplayExercises(exercises []domain.Exercise) {
	p.exercises = exercises
}

func (p *exerciseListPresenter) ExerciseListFailed(err error) {
	p.err = err
}

type workoutPresenter struct {
	result    usecase.Result
	delivered bool
}

func (p *workoutPresenter) WorkoutRecordedWithResult(result usecase.Result) {
	p.result = result
	p.delivered = true
}

package api

import (
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WorkoutHandler struct {
	workoutRepo     repository.WorkoutRepository
	exerciseRepo    repository.ExerciseRepository
	bmiService      service.BMIService
	saveDataService service.SaveDataService
	metrics         *metrics.Manager
	log             logrus.FieldLogger
}

func NewWorkoutHandler(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	bmiService service.BMIService,
	saveDataService service.SaveDataService,
	metricsManager *metrics.Manager,
	log logrus.FieldLogger,
) *WorkoutHandler {
	return &WorkoutHandler{
		workoutRepo:     workoutRepo,
		exerciseRepo:    exerciseRepo,
		bmiService:      bmiService,
		saveDataService: saveDataService,
		metrics:         metricsManager,
		log:             log,
	}
}

// RecordWorkout godoc
// @Summary Record a finished workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body RecordWorkoutRequest true "Workout"
// @Success 201 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Invalid workout"
// @Failure 500 {object} gin.H "Write failed"
// @Router /workouts [post]
func (h *WorkoutHandler) RecordWorkout(c *gin.Context) {
	var req RecordWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	presenter := &workoutPresenter{}
	uc := usecase.NewRecordWorkout(h.workoutRepo, h.exerciseRepo, h.bmiService, h.saveDataService, h.metrics, h.log, presenter)
	uc.RecordWorkout(c.Request.Context(), req.toDomain())
	uc.SetOutput(nil)

	if !presenter.delivered {
		abortWithError(c, http.StatusInternalServerError, "Workout result was not delivered.")
		return
	}
	if presenter.result.Err != nil {
		respondWithError(c, h.log, presenter.result.Err, "Failed to record workout.")
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(presenter.result.Workout))
}

// ListWorkouts godoc
// @Summary List recorded workouts, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutRepo.ListWorkouts(c.Request.Context())
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

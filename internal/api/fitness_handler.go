package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/fitness"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/usecase"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FitnessHandler exposes the calculation engine.
type FitnessHandler struct {
	exerciseRepo repository.ExerciseRepository
	bmiService   service.BMIService
	log          logrus.FieldLogger
}

func NewFitnessHandler(exerciseRepo repository.ExerciseRepository, bmiService service.BMIService, log logrus.FieldLogger) *FitnessHandler {
	return &FitnessHandler{
		exerciseRepo: exerciseRepo,
		bmiService:   bmiService,
		log:          log,
	}
}

// TrackCalories godoc
// @Summary Estimate calories burned for one set
// @Tags Fitness
// @Accept json
// @Produce json
// @Param request body CaloriesRequest true "Set"
// @Success 200 {object} CaloriesResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /calories [post]
func (h *FitnessHandler) TrackCalories(c *gin.Context) {
	var req CaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	ctx := c.Request.Context()

	var met float64
	switch {
	case req.Met != nil:
		met = *req.Met
	case req.ExerciseID != "":
		tmpl, err := h.exerciseRepo.FetchExercise(ctx, req.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				err = usecase.ErrExerciseNotFound
			}
			respondWithError(c, h.log, err, "Failed to retrieve exercise.")
			return
		}
		met = tmpl.CaloriesCoefficient
	default:
		abortWithError(c, http.StatusBadRequest, "Either met or exerciseId is required")
		return
	}

	var bodyWeight float64
	if req.BodyWeight != nil {
		bodyWeight = *req.BodyWeight
	} else {
		weight, found, err := h.bmiService.BodyWeightKilograms(ctx)
		if err != nil {
			respondWithError(c, h.log, err, "Failed to retrieve body weight.")
			return
		}
		if !found {
			abortWithError(c, http.StatusBadRequest, "bodyWeight is required when no BMI profile is stored")
			return
		}
		bodyWeight = weight
	}

	calories, err := fitness.TrackCaloriesBurned(
		met,
		bodyWeight,
		domain.SetType(req.SetType),
		secondsToDuration(req.DurationSeconds),
		req.Repetitions,
	)
	if err != nil {
		respondWithError(c, h.log, err, "Failed to calculate calories.")
		return
	}
	c.JSON(http.StatusOK, CaloriesResponse{Calories: calories})
}

// ValidateSet godoc
// @Summary Check whether a set may be added to an exercise session
// @Tags Fitness
// @Accept json
// @Produce json
// @Param request body ValidateSetRequest true "Set and session so far"
// @Success 200 {object} ValidateSetResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /sets/validate [post]
func (h *FitnessHandler) ValidateSet(c *gin.Context) {
	var req ValidateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	tmpl, err := h.exerciseRepo.FetchExercise(c.Request.Context(), req.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = fmt.Errorf("%w: [%s]", usecase.ErrExerciseNotFound, req.ExerciseID)
		}
		respondWithError(c, h.log, err, "Failed to retrieve exercise.")
		return
	}

	record := domain.ExerciseRecord{
		ExerciseID: req.ExerciseID,
		Sets:       repsToDomain(req.Previous),
	}
	valid := fitness.IsValid(req.Set.toDomain(), record, domain.ExerciseFromTemplate(*tmpl))
	c.JSON(http.StatusOK, ValidateSetResponse{Valid: valid})
}

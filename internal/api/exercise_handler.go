package api

import (
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler serves the catalog. Every request runs its own
// ListExercise bound to a request-scoped presenter.
type ExerciseHandler struct {
	exerciseRepo repository.ExerciseRepository
	imageLookup  repository.ImageLookupRepository
	metrics      *metrics.Manager
	log          logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(
	exerciseRepo repository.ExerciseRepository,
	imageLookup repository.ImageLookupRepository,
	metricsManager *metrics.Manager,
	log logrus.FieldLogger,
) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseRepo: exerciseRepo,
		imageLookup:  imageLookup,
		metrics:      metricsManager,
		log:          log,
	}
}

func (h *ExerciseHandler) useCase(output usecase.ListExerciseOutput) *usecase.ListExercise {
	return usecase.NewListExercise(h.exerciseRepo, h.metrics, h.log, output)
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Exercises
// @Produce json
// @Success 200 {array} domain.Exercise
// @Failure 503 {object} gin.H "Catalog unavailable"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	presenter := &exerciseListPresenter{}
	uc := h.useCase(presenter)
	uc.ListExercise(c.Request.Context())
	uc.SetOutput(nil)

	if presenter.err != nil {
		respondWithError(c, h.log, presenter.err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, presenter.exercises)
}

// GetExercise godoc
// @Summary Get a single exercise
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.useCase(nil).FetchExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GetExerciseImages godoc
// @Summary Resolve the image URLs of an exercise
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseImagesResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id}/images [get]
func (h *ExerciseHandler) GetExerciseImages(c *gin.Context) {
	exercise, err := h.useCase(nil).FetchExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve exercise.")
		return
	}

	urls, err := h.imageLookup.LookupImages(c.Request.Context(), exercise.Images)
	if err != nil {
		respondWithError(c, h.log, err, "Failed to resolve exercise images.")
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, ExerciseImagesResponse{ID: exercise.ID, Images: urls})
}

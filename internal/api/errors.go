package api

import (
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/fitness"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/usecase"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrSaveDataInvalid),
		errors.Is(err, service.ErrProfileInvalid),
		errors.Is(err, usecase.ErrInvalidWorkout),
		errors.Is(err, fitness.ErrNegativeInput),
		errors.Is(err, fitness.ErrUnknownSetType),
		errors.Is(err, catalog.ErrInvalidTemplate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSaveDataDuplicate):
		return http.StatusConflict
	case errors.Is(err, service.ErrSaveDataNoRecordFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, usecase.ErrExerciseNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError maps err to a status code. Internal errors are logged
// and replaced by fallback so storage details do not leak to clients.
func respondWithError(c *gin.Context, log logrus.FieldLogger, err error, fallback string) {
	code := statusForError(err)
	if code >= http.StatusInternalServerError {
		log.WithError(err).Error(fallback)
		abortWithError(c, code, fallback)
		return
	}
	abortWithError(c, code, err.Error())
}

package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SaveDataHandler struct {
	saveDataService service.SaveDataService
	log             logrus.FieldLogger
}

func NewSaveDataHandler(saveDataService service.SaveDataService, log logrus.FieldLogger) *SaveDataHandler {
	return &SaveDataHandler{saveDataService: saveDataService, log: log}
}

// ListSaveData godoc
// @Summary List progress records of every exercise
// @Tags SaveData
// @Produce json
// @Success 200 {array} SaveDataResponse
// @Router /savedata [get]
func (h *SaveDataHandler) ListSaveData(c *gin.Context) {
	records, err := h.saveDataService.ReadAllSavedData(c.Request.Context())
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve save data.")
		return
	}

	responses := make([]SaveDataResponse, len(records))
	for i := range records {
		responses[i] = MapSaveDataToResponse(&records[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetSaveData godoc
// @Summary Get the progress record of one exercise
// @Tags SaveData
// @Produce json
// @Param name path string true "Exercise name"
// @Success 200 {object} SaveDataResponse
// @Failure 404 {object} gin.H "No record"
// @Router /savedata/{name} [get]
func (h *SaveDataHandler) GetSaveData(c *gin.Context) {
	record, found, err := h.saveDataService.ReadSavedDataFor(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve save data.")
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, service.ErrSaveDataNoRecordFound.Error())
		return
	}
	c.JSON(http.StatusOK, MapSaveDataToResponse(record))
}

// CreateSaveData godoc
// @Summary Create the progress record of an exercise
// @Tags SaveData
// @Accept json
// @Produce json
// @Param request body CreateSaveDataRequest true "Record"
// @Success 201 {object} SaveDataResponse
// @Failure 409 {object} gin.H "Record already exists"
// @Router /savedata [post]
func (h *SaveDataHandler) CreateSaveData(c *gin.Context) {
	var req CreateSaveDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.saveDataService.CreateSaveDataFor(c.Request.Context(), req.ExerciseName, repsToDomain(req.Sets))
	if err != nil {
		respondWithError(c, h.log, err, "Failed to create save data.")
		return
	}
	c.JSON(http.StatusCreated, MapSaveDataToResponse(record))
}

// UpdateSaveData godoc
// @Summary Replace the sets of an existing progress record
// @Tags SaveData
// @Accept json
// @Produce json
// @Param name path string true "Exercise name"
// @Param request body SetsRequest true "Sets"
// @Success 200 {object} SaveDataResponse
// @Failure 404 {object} gin.H "No record"
// @Router /savedata/{name} [put]
func (h *SaveDataHandler) UpdateSaveData(c *gin.Context) {
	var req SetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.saveDataService.UpdateSaveDataFor(c.Request.Context(), domain.SaveDataRecord{
		ExerciseName: c.Param("name"),
		Sets:         repsToDomain(req.Sets),
	})
	if err != nil {
		respondWithError(c, h.log, err, "Failed to update save data.")
		return
	}
	c.JSON(http.StatusOK, MapSaveDataToResponse(record))
}

// RecordProgress godoc
// @Summary Create or replace the progress record of an exercise
// @Tags SaveData
// @Accept json
// @Produce json
// @Param name path string true "Exercise name"
// @Param request body SetsRequest true "Sets"
// @Success 201 {object} ProgressResponse "Created"
// @Success 200 {object} ProgressResponse "Updated"
// @Router /savedata/{name}/progress [post]
func (h *SaveDataHandler) RecordProgress(c *gin.Context) {
	var req SetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, created, err := h.saveDataService.RecordProgress(c.Request.Context(), c.Param("name"), repsToDomain(req.Sets))
	if err != nil {
		respondWithError(c, h.log, err, "Failed to record progress.")
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	c.JSON(code, ProgressResponse{SaveDataResponse: MapSaveDataToResponse(record), Created: created})
}

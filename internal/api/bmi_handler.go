package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BMIHandler struct {
	bmiService service.BMIService
	log        logrus.FieldLogger
}

func NewBMIHandler(bmiService service.BMIService, log logrus.FieldLogger) *BMIHandler {
	return &BMIHandler{bmiService: bmiService, log: log}
}

type UpdateBMIRequest struct {
	Weight     float64 `json:"weight"`
	Height     float64 `json:"height"`
	WeightUnit string  `json:"weightUnit" binding:"omitempty,oneof=kg lb"`
	HeightUnit string  `json:"heightUnit" binding:"omitempty,oneof=cm m in"`
}

// GetBMI godoc
// @Summary Get the body metrics profile
// @Tags BMI
// @Produce json
// @Success 200 {object} service.Profile
// @Failure 404 {object} gin.H "No profile stored"
// @Router /bmi [get]
func (h *BMIHandler) GetBMI(c *gin.Context) {
	profile, err := h.bmiService.GetProfile(c.Request.Context())
	if err != nil {
		respondWithError(c, h.log, err, "Failed to retrieve BMI profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateBMI godoc
// @Summary Replace the body metrics profile
// @Tags BMI
// @Accept json
// @Produce json
// @Param request body UpdateBMIRequest true "Profile"
// @Success 200 {object} service.Profile
// @Failure 400 {object} gin.H "Invalid profile"
// @Router /bmi [put]
func (h *BMIHandler) UpdateBMI(c *gin.Context) {
	var req UpdateBMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.bmiService.UpdateProfile(c.Request.Context(), domain.BMI{
		Weight:     req.Weight,
		Height:     req.Height,
		WeightUnit: domain.WeightUnit(req.WeightUnit),
		HeightUnit: domain.HeightUnit(req.HeightUnit),
	})
	if err != nil {
		respondWithError(c, h.log, err, "Failed to update BMI profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

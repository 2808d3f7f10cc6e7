// File: /controllers/waste_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"radlog-api/dosimetry"
	"radlog-api/store"
	"radlog-api/utils"
)

type WasteController struct {
	log store.WasteLog
}

func NewWasteController(log store.WasteLog) *WasteController {
	return &WasteController{log: log}
}

type EvaluateRequest struct {
	Isotope                string  `json:"isotope" binding:"required"`
	GammaConstant          float64 `json:"gamma_constant"`
	DistanceMeters         float64 `json:"distance_meters"`
	DoseRateMicroSvPerHour float64 `json:"dose_rate_usv_per_hour"`
	MassGrams              float64 `json:"mass_grams"`
}

func (r *EvaluateRequest) toInput() dosimetry.Input {
	return dosimetry.Input{
		Isotope:                r.Isotope,
		GammaConstant:          r.GammaConstant,
		DistanceMeters:         r.DistanceMeters,
		DoseRateMicroSvPerHour: r.DoseRateMicroSvPerHour,
		MassGrams:              r.MassGrams,
	}
}

// Evaluate computes activity and density without saving anything.
func (wc *WasteController) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidIsotopeLabel(req.Isotope) {
		utils.SendValidationError(c, "Isotope label must be 1-50 non-blank characters")
		return
	}

	result, err := dosimetry.Evaluate(req.toInput())
	if err != nil {
		var invalid *dosimetry.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid input",
				"fields": invalid.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Save evaluates the inputs and appends the result to the caller's log.
// Invalid input fails before anything touches the store.
func (wc *WasteController) Save(c *gin.Context) {
	userID := c.GetString("user_id")

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidIsotopeLabel(req.Isotope) {
		utils.SendValidationError(c, "Isotope label must be 1-50 non-blank characters")
		return
	}

	input := req.toInput()
	result, err := dosimetry.Evaluate(input)
	if err != nil {
		var invalid *dosimetry.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid input",
				"fields": invalid.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Evaluation failed"})
		return
	}

	record, err := wc.log.Append(userID, input, result)
	if err != nil {
		if errors.Is(err, store.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to save calculation"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetHistory returns the caller's saved calculations, newest first.
func (wc *WasteController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	records, err := wc.log.ListByOwner(userID)
	if err != nil {
		if errors.Is(err, store.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch calculation history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetIsotopes returns the built-in gamma-constant reference table.
func (wc *WasteController) GetIsotopes(c *gin.Context) {
	c.JSON(http.StatusOK, dosimetry.GammaConstants)
}

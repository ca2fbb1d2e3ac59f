package handlers

import (
	"net/http"

	"price-forecast/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PredictorHandler serves the predictor catalog.
type PredictorHandler struct{}

func NewPredictorHandler() *PredictorHandler {
	return &PredictorHandler{}
}

// ListPredictors handles GET /api/v1/predictors
func (h *PredictorHandler) ListPredictors(c *gin.Context) {
	predictors := []models.PredictorInfo{
		{
			Name:        "naive",
			Description: "Repeats the last observed value across the horizon. Baseline.",
			Parameters:  []models.ParameterInfo{},
		},
		{
			Name:        "sma",
			Description: "Smooths the input window with a simple moving average and projects the final level forward.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "period",
					Type:        "int",
					Description: "Moving-average period (clamped to the window length)",
					Default:     10,
				},
			},
		},
		{
			Name:        "trend",
			Description: "Fits an AR(1) model to the input window and iterates it forward. Continues a linear trend exactly.",
			Parameters:  []models.ParameterInfo{},
		},
	}

	c.JSON(http.StatusOK, gin.H{"predictors": predictors})
}

package handlers

import (
	"errors"
	"net/http"

	"price-forecast/internal/api/models"
	"price-forecast/internal/pipeline"

	"github.com/gin-gonic/gin"
)

// ScoreHandler scores caller-supplied actual/predicted vectors.
type ScoreHandler struct{}

func NewScoreHandler() *ScoreHandler {
	return &ScoreHandler{}
}

// Score handles POST /api/v1/score
func (h *ScoreHandler) Score(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	card, err := pipeline.Score(req.Actual, req.Predicted)
	if err != nil {
		if errors.Is(err, pipeline.ErrShapeMismatch) {
			badRequest(c, "SHAPE_MISMATCH", err.Error())
			return
		}
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ScoreResponse{Scorecard: card})
}

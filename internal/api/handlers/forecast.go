package handlers

import (
	"errors"
	"net/http"
	"time"

	"price-forecast/internal/api/models"
	"price-forecast/internal/config"
	"price-forecast/internal/data"
	"price-forecast/internal/model"
	"price-forecast/internal/pipeline"
	"price-forecast/internal/predictor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ForecastHandler runs the full pipeline for an inline series.
type ForecastHandler struct {
	defaults config.Config
}

func NewForecastHandler(defaults config.Config) *ForecastHandler {
	return &ForecastHandler{defaults: defaults}
}

// RunForecast handles POST /api/v1/forecast
func (h *ForecastHandler) RunForecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	series, err := buildSeries(req.Series)
	if err != nil {
		badRequest(c, "INVALID_SERIES", err.Error())
		return
	}

	cfg := h.mergeConfig(req)
	params, err := cfg.PipelineParams()
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	pred, err := predictor.New(cfg.Predictor.Name, cfg.Predictor.Params)
	if err != nil {
		badRequest(c, "INVALID_PREDICTOR", err.Error())
		return
	}

	prep, err := pipeline.Prepare(series, params)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}
	if prep.InsufficientData {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INSUFFICIENT_DATA",
				Message: "series cannot supply one full input+predict window; shorten the windows or supply more data",
				Details: map[string]interface{}{
					"series_length": series.Len(),
					"input_days":    params.NInput,
					"predict_days":  params.NPredict,
				},
			},
		})
		return
	}

	eval, err := pipeline.Evaluate(prep, pred)
	if err != nil {
		pipelineError(c, err)
		return
	}

	// The forecast input is the series truncated the same way Prepare saw it.
	truncated := series
	if params.Cutoff != nil {
		truncated = series.TruncateAt(*params.Cutoff)
	}
	fc, err := pipeline.Forecast(prep.HeldOutTail, truncated.FutureDates(params.NPredict), pred, prep.Scaler)
	if err != nil {
		pipelineError(c, err)
		return
	}

	resp := models.ForecastResponse{
		RunID:     uuid.NewString(),
		Predictor: pred.Name(),
		LastPrice: truncated.Last().Price,
		Forecast:  fc,
	}
	if len(eval.Rows) > 0 {
		card := eval.Aggregate
		resp.Scorecard = &card
		if req.Options.IncludeEval {
			resp.Eval = evalPayload(eval.Rows)
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    resp.RunID,
		"predictor": pred.Name(),
		"windows":   len(eval.Rows),
		"horizon":   params.NPredict,
	}).Info("forecast run complete")

	c.JSON(http.StatusOK, resp)
}

// mergeConfig overlays request options onto the server defaults.
func (h *ForecastHandler) mergeConfig(req models.ForecastRequest) config.Config {
	cfg := h.defaults
	if p := req.Pipeline; p != nil {
		if p.InputDays != nil {
			cfg.Pipeline.InputDays = *p.InputDays
		}
		if p.PredictDays != nil {
			cfg.Pipeline.PredictDays = *p.PredictDays
		}
		if p.Scaling != nil {
			cfg.Pipeline.Scaling = *p.Scaling
		}
		if p.ValidationFraction != nil {
			cfg.Pipeline.ValidationFraction = *p.ValidationFraction
		}
		if p.Shuffle != nil {
			cfg.Pipeline.Shuffle = *p.Shuffle
		}
		if p.Seed != nil {
			cfg.Pipeline.Seed = *p.Seed
		}
		if p.EndDate != nil {
			cfg.Pipeline.EndDate = *p.EndDate
		}
	}
	if req.Predictor != nil && req.Predictor.Name != "" {
		cfg.Predictor.Name = req.Predictor.Name
		cfg.Predictor.Params = req.Predictor.Params
	}
	return cfg
}

func buildSeries(payload models.SeriesPayload) (model.PriceSeries, error) {
	points := make([]model.PricePoint, 0, len(payload.Data))
	for _, row := range payload.Data {
		d, err := data.ParseDate(row.Date)
		if err != nil {
			return model.PriceSeries{}, err
		}
		points = append(points, model.PricePoint{Date: d, Price: row.Price})
	}
	return model.NewPriceSeries(points)
}

func evalPayload(rows []pipeline.EvalRow) []models.EvalRowPayload {
	out := make([]models.EvalRowPayload, 0, len(rows))
	for _, r := range rows {
		dates := make([]string, len(r.TargetDates))
		for i, d := range r.TargetDates {
			dates[i] = d.Format(time.RFC3339)
		}
		out = append(out, models.EvalRowPayload{
			Window:      r.Index,
			TargetDates: dates,
			Actual:      r.Actual,
			Predicted:   r.Predicted,
			Scorecard:   r.Card,
		})
	}
	return out
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

// pipelineError maps pipeline failures: predictor faults are the upstream's
// fault (502), everything else is ours.
func pipelineError(c *gin.Context, err error) {
	if errors.Is(err, pipeline.ErrPredictorFailure) {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PREDICTOR_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "PIPELINE_ERROR", Message: err.Error()},
	})
}

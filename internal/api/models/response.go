package models

import "price-forecast/internal/model"

// ForecastResponse is the result of one pipeline run.
type ForecastResponse struct {
	RunID     string                `json:"run_id"`
	Predictor string                `json:"predictor"`
	LastPrice float64               `json:"last_price"`
	Forecast  []model.ForecastPoint `json:"forecast"`
	// Scorecard aggregates accuracy over the validation windows; omitted
	// when the split produced none.
	Scorecard *model.Scorecard `json:"scorecard,omitempty"`
	Eval      []EvalRowPayload `json:"eval,omitempty"`
}

type EvalRowPayload struct {
	Window      int             `json:"window"`
	TargetDates []string        `json:"target_dates"`
	Actual      []float64       `json:"actual"`
	Predicted   []float64       `json:"predicted"`
	Scorecard   model.Scorecard `json:"scorecard"`
}

type ScoreResponse struct {
	Scorecard model.Scorecard `json:"scorecard"`
}

// PredictorInfo describes one predictor in the catalog.
type PredictorInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Default     interface{} `json:"default"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

package models

// ForecastRequest is the body of POST /api/v1/forecast. The series is
// supplied inline; pipeline and predictor settings overlay the server
// defaults (absent fields keep the default).
type ForecastRequest struct {
	Series    SeriesPayload     `json:"series" binding:"required"`
	Pipeline  *PipelineOptions  `json:"pipeline,omitempty"`
	Predictor *PredictorOptions `json:"predictor,omitempty"`
	Options   RequestOptions    `json:"options"`
}

type SeriesPayload struct {
	Data []PricePointPayload `json:"data" binding:"required"`
}

type PricePointPayload struct {
	// Date is RFC3339 or YYYY-MM-DD.
	Date  string  `json:"date" binding:"required"`
	Price float64 `json:"price"`
}

// PipelineOptions are per-request overrides; pointers distinguish "absent"
// from legitimate zero values (validation_fraction: 0, shuffle: false).
type PipelineOptions struct {
	InputDays          *int     `json:"input_days,omitempty"`
	PredictDays        *int     `json:"predict_days,omitempty"`
	Scaling            *string  `json:"scaling,omitempty"`
	ValidationFraction *float64 `json:"validation_fraction,omitempty"`
	Shuffle            *bool    `json:"shuffle,omitempty"`
	Seed               *int64   `json:"seed,omitempty"`
	EndDate            *string  `json:"end_date,omitempty"`
}

type PredictorOptions struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type RequestOptions struct {
	// IncludeEval adds the per-window evaluation ledger to the response.
	IncludeEval bool `json:"include_eval"`
}

// ScoreRequest is the body of POST /api/v1/score.
type ScoreRequest struct {
	Actual    []float64 `json:"actual" binding:"required"`
	Predicted []float64 `json:"predicted" binding:"required"`
}

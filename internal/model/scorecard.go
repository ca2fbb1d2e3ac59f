package model

import (
	"encoding/json"
	"math"
)

// Scorecard is the fixed bundle of accuracy metrics for one
// (actual, predicted) vector pair.
//
// MAPE is expressed in percent. When any actual value is exactly zero the
// percentage error is undefined; MAPE is then +Inf and Degenerate is set so
// callers can tell a bad fit from an undefined one. JSON has no encoding for
// infinities, so a degenerate MAPE serializes as null.
type Scorecard struct {
	MAPE float64 `json:"mape"`
	R2   float64 `json:"r2"`
	MAE  float64 `json:"mae"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`

	Degenerate bool `json:"degenerate,omitempty"`
}

// MarshalJSON emits mape as null when it is not a finite number; the outer
// mape field shadows the embedded one.
func (s Scorecard) MarshalJSON() ([]byte, error) {
	type alias Scorecard
	out := struct {
		MAPE *float64 `json:"mape"`
		alias
	}{alias: alias(s)}
	if !math.IsInf(s.MAPE, 0) && !math.IsNaN(s.MAPE) {
		out.MAPE = &s.MAPE
	}
	return json.Marshal(out)
}

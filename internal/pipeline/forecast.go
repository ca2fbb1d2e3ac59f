package pipeline

import (
	"fmt"
	"time"

	"price-forecast/internal/model"
	"price-forecast/internal/predictor"
	"price-forecast/internal/scale"
)

// Forecast invokes the predictor once on an already-scaled input window and
// pairs its output with futureDates, un-scaling back to price units through
// the run's fitted scaler. A nil scaler means no scaling was active.
//
// Predictor errors (including a wrong-length output) come back wrapped in
// ErrPredictorFailure; there is no retry at this layer.
func Forecast(
	inputWindow []float64,
	futureDates []time.Time,
	pred predictor.Predictor,
	scaler scale.Scaler,
) (model.Forecast, error) {
	if len(inputWindow) == 0 {
		return nil, fmt.Errorf("input window is empty")
	}
	if len(futureDates) == 0 {
		return nil, fmt.Errorf("no future dates to forecast")
	}
	for i := 1; i < len(futureDates); i++ {
		if !futureDates[i].After(futureDates[i-1]) {
			return nil, fmt.Errorf("future dates must be strictly increasing: index %d", i)
		}
	}

	values, err := pred.Predict(inputWindow, len(futureDates))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPredictorFailure, pred.Name(), err)
	}
	if len(values) != len(futureDates) {
		return nil, fmt.Errorf("%w: %s returned %d values for horizon %d",
			ErrPredictorFailure, pred.Name(), len(values), len(futureDates))
	}

	if scaler != nil && scaler.Mode() != scale.None {
		values = scaler.Inverse(values)
	}

	out := make(model.Forecast, len(values))
	for i, v := range values {
		out[i] = model.ForecastPoint{Date: futureDates[i], Price: v}
	}
	return out, nil
}

package predictor

import (
	"errors"
	"fmt"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

const defaultSMAPeriod = 10

// SMA smooths the input window with a simple moving average and projects the
// final smoothed level flat across the horizon. Useful on noisy series where
// the last raw value is a poor anchor.
type SMA struct {
	Period int
}

func (s *SMA) Name() string { return "sma" }

func (s *SMA) Predict(window []float64, horizon int) ([]float64, error) {
	if len(window) == 0 {
		return nil, errors.New("empty input window")
	}
	if horizon <= 0 {
		return nil, errors.New("horizon must be positive")
	}

	period := s.Period
	if period <= 0 {
		period = defaultSMAPeriod
	}
	if period > len(window) {
		period = len(window)
	}

	sma := trend.NewSmaWithPeriod[float64](period)
	smoothed := helper.ChanToSlice(sma.Compute(helper.SliceToChan(window)))
	if len(smoothed) == 0 {
		return nil, fmt.Errorf("sma produced no values for window of %d with period %d", len(window), period)
	}

	level := smoothed[len(smoothed)-1]
	out := make([]float64, horizon)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

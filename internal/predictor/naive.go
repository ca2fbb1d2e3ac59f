package predictor

import "errors"

// Naive repeats the window's last value across the horizon. It is the
// baseline every other predictor has to beat.
type Naive struct{}

func (n *Naive) Name() string { return "naive" }

func (n *Naive) Predict(window []float64, horizon int) ([]float64, error) {
	if len(window) == 0 {
		return nil, errors.New("empty input window")
	}
	if horizon <= 0 {
		return nil, errors.New("horizon must be positive")
	}
	last := window[len(window)-1]
	out := make([]float64, horizon)
	for i := range out {
		out[i] = last
	}
	return out, nil
}

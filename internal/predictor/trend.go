package predictor

import "errors"

// Trend fits an AR(1) model y_t = c + phi*y_{t-1} to the input window by
// least squares and iterates it forward over the horizon. On a perfectly
// linear window this continues the line exactly (phi=1, c=slope).
type Trend struct{}

func (t *Trend) Name() string { return "trend" }

func (t *Trend) Predict(window []float64, horizon int) ([]float64, error) {
	if len(window) < 2 {
		return nil, errors.New("trend predictor needs a window of at least 2 values")
	}
	if horizon <= 0 {
		return nil, errors.New("horizon must be positive")
	}

	phi, c := fitAR1(window)

	out := make([]float64, horizon)
	cur := window[len(window)-1]
	for i := 0; i < horizon; i++ {
		cur = c + phi*cur
		out[i] = cur
	}
	return out, nil
}

// fitAR1 estimates y_t = c + phi*y_{t-1} + e_t over consecutive pairs.
func fitAR1(series []float64) (phi float64, c float64) {
	var sumX, sumY, sumXX, sumXY float64
	for i := 1; i < len(series); i++ {
		x := series[i-1]
		y := series[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	n := float64(len(series) - 1)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// Constant regressor: fall back to a flat continuation at the mean.
		return 0, sumY / n
	}
	phi = (n*sumXY - sumX*sumY) / denom
	c = (sumY - phi*sumX) / n
	return phi, c
}

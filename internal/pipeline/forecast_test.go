package pipeline

import (
	"errors"
	"testing"
	"time"

	"price-forecast/internal/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPredictor returns canned values or a canned error.
type stubPredictor struct {
	values []float64
	err    error
}

func (s *stubPredictor) Name() string { return "stub" }

func (s *stubPredictor) Predict(window []float64, horizon int) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.values, nil
}

func futureDates(n int) []time.Time {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestForecastDateAlignment(t *testing.T) {
	dates := futureDates(3)
	pred := &stubPredictor{values: []float64{9, 1, 5}}

	fc, err := Forecast([]float64{1, 2, 3}, dates, pred, nil)
	require.NoError(t, err)
	require.Len(t, fc, 3)

	assert.Equal(t, dates, fc.Dates())
	assert.Equal(t, []float64{9, 1, 5}, fc.Prices())
}

func TestForecastInverseTransforms(t *testing.T) {
	scaler, err := scale.New(scale.MinMax)
	require.NoError(t, err)
	require.NoError(t, scaler.Fit([]float64{100, 200})) // maps x -> (x-100)/100

	pred := &stubPredictor{values: []float64{0, 0.5, 1}}
	fc, err := Forecast([]float64{0.1, 0.2}, futureDates(3), pred, scaler)
	require.NoError(t, err)

	assert.InDelta(t, 100, fc[0].Price, 1e-12)
	assert.InDelta(t, 150, fc[1].Price, 1e-12)
	assert.InDelta(t, 200, fc[2].Price, 1e-12)
}

func TestForecastNoScalingMarkerPassesThrough(t *testing.T) {
	scaler, err := scale.New(scale.None)
	require.NoError(t, err)
	require.NoError(t, scaler.Fit([]float64{1}))

	pred := &stubPredictor{values: []float64{3.5}}
	fc, err := Forecast([]float64{1}, futureDates(1), pred, scaler)
	require.NoError(t, err)
	assert.Equal(t, 3.5, fc[0].Price)
}

func TestForecastPredictorErrorPropagates(t *testing.T) {
	pred := &stubPredictor{err: errors.New("model exploded")}

	_, err := Forecast([]float64{1, 2}, futureDates(2), pred, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPredictorFailure)
	assert.Contains(t, err.Error(), "model exploded")
}

func TestForecastMalformedShapeIsPredictorFailure(t *testing.T) {
	pred := &stubPredictor{values: []float64{1, 2}} // horizon will be 3

	_, err := Forecast([]float64{1, 2}, futureDates(3), pred, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPredictorFailure)
}

func TestForecastPreconditions(t *testing.T) {
	pred := &stubPredictor{values: []float64{1}}

	_, err := Forecast(nil, futureDates(1), pred, nil)
	assert.Error(t, err)

	_, err = Forecast([]float64{1}, nil, pred, nil)
	assert.Error(t, err)

	// Non-increasing future dates.
	d := futureDates(2)
	d[1] = d[0]
	_, err = Forecast([]float64{1}, d, pred, nil)
	assert.Error(t, err)
}

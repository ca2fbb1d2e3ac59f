package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByName(t *testing.T) {
	assert.Equal(t, []string{"naive", "sma", "trend"}, Names())

	for _, name := range Names() {
		p, err := New(name, nil)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}

	_, err := New("lstm", nil)
	assert.Error(t, err)
}

func TestNewSMAParams(t *testing.T) {
	p, err := New("sma", map[string]any{"period": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, p.(*SMA).Period)

	_, err = New("sma", map[string]any{"period": -1})
	assert.Error(t, err)
}

func TestNaiveRepeatsLastValue(t *testing.T) {
	p := &Naive{}
	got, err := p.Predict([]float64{3, 7, 11}, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 11, 11, 11}, got)
}

func TestNaivePreconditions(t *testing.T) {
	p := &Naive{}

	_, err := p.Predict(nil, 2)
	assert.Error(t, err)

	_, err = p.Predict([]float64{1}, 0)
	assert.Error(t, err)
}

func TestTrendContinuesLinearSeries(t *testing.T) {
	// y = 100 + 2i: AR(1) fits phi=1, c=2 exactly.
	window := make([]float64, 20)
	for i := range window {
		window[i] = 100 + 2*float64(i)
	}

	p := &Trend{}
	got, err := p.Predict(window, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	last := window[len(window)-1]
	assert.InDelta(t, last+2, got[0], 1e-9)
	assert.InDelta(t, last+4, got[1], 1e-9)
	assert.InDelta(t, last+6, got[2], 1e-9)
}

func TestTrendConstantWindowStaysFlat(t *testing.T) {
	p := &Trend{}
	got, err := p.Predict([]float64{5, 5, 5, 5}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5, got[0], 1e-12)
	assert.InDelta(t, 5, got[1], 1e-12)
}

func TestTrendWindowTooShort(t *testing.T) {
	p := &Trend{}
	_, err := p.Predict([]float64{1}, 2)
	assert.Error(t, err)
}

func TestSMAProjectsSmoothedLevel(t *testing.T) {
	p := &SMA{Period: 3}
	got, err := p.Predict([]float64{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Last 3-period average is (4+5+6)/3 = 5, projected flat.
	assert.InDelta(t, 5, got[0], 1e-9)
	assert.InDelta(t, 5, got[1], 1e-9)
}

func TestSMAClampsPeriodToWindow(t *testing.T) {
	p := &SMA{Period: 50}
	got, err := p.Predict([]float64{2, 4}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3, got[0], 1e-9)
}

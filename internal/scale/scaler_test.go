package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "none", input: "none", want: None},
		{name: "standardization", input: "standardization", want: Standardization},
		{name: "minmax", input: "minmax", want: MinMax},
		{name: "normalization", input: "normalization", want: Normalization},
		{name: "empty defaults to none", input: "", want: None},
		{name: "unknown", input: "robust", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMode(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScalerRoundTrip(t *testing.T) {
	values := []float64{10, 25.5, 3, 47, 18.2, 3, 99.9}

	for _, mode := range []Mode{Standardization, MinMax, Normalization} {
		t.Run(string(mode), func(t *testing.T) {
			s, err := New(mode)
			require.NoError(t, err)
			require.NoError(t, s.Fit(values))

			back := s.Inverse(s.Transform(values))
			for i := range values {
				assert.InDelta(t, values[i], back[i], 1e-9)
			}
		})
	}
}

func TestIdentityPassthrough(t *testing.T) {
	values := []float64{1.5, -2, 0, 42}

	s, err := New(None)
	require.NoError(t, err)
	require.NoError(t, s.Fit(values))

	assert.Equal(t, values, s.Transform(values))
	assert.Equal(t, values, s.Inverse(values))
}

func TestMinMaxRange(t *testing.T) {
	s, err := New(MinMax)
	require.NoError(t, err)
	require.NoError(t, s.Fit([]float64{10, 20, 30}))

	got := s.Transform([]float64{10, 20, 30})
	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-12)
	assert.InDelta(t, 1.0, got[2], 1e-12)
}

func TestStandardizationMoments(t *testing.T) {
	s, err := New(Standardization)
	require.NoError(t, err)
	require.NoError(t, s.Fit([]float64{2, 4, 6, 8}))

	got := s.Transform([]float64{2, 4, 6, 8})
	var mean float64
	for _, v := range got {
		mean += v
	}
	mean /= float64(len(got))
	assert.InDelta(t, 0, mean, 1e-12)

	var variance float64
	for _, v := range got {
		variance += v * v
	}
	variance /= float64(len(got))
	assert.InDelta(t, 1, variance, 1e-12)
}

func TestConstantInputStaysInvertible(t *testing.T) {
	values := []float64{7, 7, 7}

	for _, mode := range []Mode{Standardization, MinMax} {
		t.Run(string(mode), func(t *testing.T) {
			s, err := New(mode)
			require.NoError(t, err)
			require.NoError(t, s.Fit(values))

			back := s.Inverse(s.Transform(values))
			for i := range values {
				assert.InDelta(t, values[i], back[i], 1e-12)
			}
		})
	}
}

func TestFitEmptyFails(t *testing.T) {
	for _, mode := range []Mode{None, Standardization, MinMax, Normalization} {
		s, err := New(mode)
		require.NoError(t, err)
		assert.Error(t, s.Fit(nil))
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"price-forecast/internal/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Default()

	params, err := c.PipelineParams()
	require.NoError(t, err)

	assert.Equal(t, 40, params.NInput)
	assert.Equal(t, 5, params.NPredict)
	assert.Equal(t, scale.MinMax, params.Scaling)
	assert.Equal(t, 0.1, params.ValidationFraction)
	assert.True(t, params.Shuffle)
	assert.Nil(t, params.Cutoff)
	assert.Equal(t, "trend", c.Predictor.Name)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  input_days: 20
  scaling: standardization
  validation_fraction: 0.25
  shuffle: false
  end_date: "2024-03-01"
predictor:
  name: sma
  params:
    period: 7
`)

	c, err := Load(path)
	require.NoError(t, err)

	params, err := c.PipelineParams()
	require.NoError(t, err)

	assert.Equal(t, 20, params.NInput)
	// Absent key keeps the default.
	assert.Equal(t, 5, params.NPredict)
	assert.Equal(t, scale.Standardization, params.Scaling)
	assert.Equal(t, 0.25, params.ValidationFraction)
	assert.False(t, params.Shuffle)
	require.NotNil(t, params.Cutoff)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *params.Cutoff)
	assert.Equal(t, "sma", c.Predictor.Name)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bad scaling mode",
			body: "pipeline:\n  scaling: robust\n",
		},
		{
			name: "negative input days",
			body: "pipeline:\n  input_days: -3\n",
		},
		{
			name: "fraction above one",
			body: "pipeline:\n  validation_fraction: 1.5\n",
		},
		{
			name: "bad end date",
			body: "pipeline:\n  end_date: 03/01/2024\n",
		},
		{
			name: "missing predictor name",
			body: "predictor:\n  name: \"\"\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

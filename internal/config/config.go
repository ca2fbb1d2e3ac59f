package config

import (
	"fmt"
	"os"
	"time"

	"price-forecast/internal/pipeline"
	"price-forecast/internal/scale"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Predictor PredictorConfig `yaml:"predictor"`
}

type PipelineConfig struct {
	// InputDays is the input window length (and the held-out tail length).
	InputDays int `yaml:"input_days"`
	// PredictDays is the forecast horizon.
	PredictDays int `yaml:"predict_days"`
	// Scaling: none, standardization, minmax or normalization.
	Scaling string `yaml:"scaling"`
	// ValidationFraction in [0,1] is the validation share of window pairs.
	ValidationFraction float64 `yaml:"validation_fraction"`
	// Shuffle picks a random split instead of the chronological one.
	Shuffle bool `yaml:"shuffle"`
	// Seed makes a shuffled split reproducible; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// EndDate (YYYY-MM-DD), when set, truncates the series for backtesting.
	EndDate string `yaml:"end_date"`
}

type PredictorConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// Default returns the configuration used when a key (or the whole file) is
// absent: a 40-day input window predicting 5 days, min-max scaling, a 10%
// shuffled validation split.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{
			InputDays:          40,
			PredictDays:        5,
			Scaling:            string(scale.MinMax),
			ValidationFraction: 0.1,
			Shuffle:            true,
		},
		Predictor: PredictorConfig{Name: "trend"},
	}
}

// Load reads a YAML config over the defaults and validates it. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if c.Predictor.Name == "" {
		return fmt.Errorf("predictor.name is required")
	}
	// Validate pipeline settings by constructing params.
	if _, err := c.PipelineParams(); err != nil {
		return fmt.Errorf("pipeline config invalid: %w", err)
	}
	return nil
}

// PipelineParams converts the YAML shape into pipeline.Params, parsing the
// scaling mode and the optional end date.
func (c Config) PipelineParams() (pipeline.Params, error) {
	mode, err := scale.ParseMode(c.Pipeline.Scaling)
	if err != nil {
		return pipeline.Params{}, err
	}
	params := pipeline.Params{
		NInput:             c.Pipeline.InputDays,
		NPredict:           c.Pipeline.PredictDays,
		Scaling:            mode,
		ValidationFraction: c.Pipeline.ValidationFraction,
		Shuffle:            c.Pipeline.Shuffle,
		Seed:               c.Pipeline.Seed,
	}
	if c.Pipeline.EndDate != "" {
		t, err := time.Parse("2006-01-02", c.Pipeline.EndDate)
		if err != nil {
			return pipeline.Params{}, fmt.Errorf("end_date must be YYYY-MM-DD: %w", err)
		}
		params.Cutoff = &t
	}
	if err := params.Validate(); err != nil {
		return pipeline.Params{}, err
	}
	return params, nil
}

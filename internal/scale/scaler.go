package scale

import (
	"errors"
	"fmt"
	"math"
)

// Mode selects which transform a pipeline run applies to prices before
// windowing. Exactly one mode is active per run.
type Mode string

const (
	None            Mode = "none"
	Standardization Mode = "standardization"
	MinMax          Mode = "minmax"
	Normalization   Mode = "normalization"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case None, Standardization, MinMax, Normalization:
		return Mode(s), nil
	case "":
		return None, nil
	default:
		return "", fmt.Errorf("unknown scaling mode %q (want none, standardization, minmax or normalization)", s)
	}
}

// Scaler is a fit-once numeric transform with an exact inverse. Fit must be
// called before Transform or Inverse; the fitted parameters are never
// refit for the lifetime of a pipeline run.
type Scaler interface {
	Mode() Mode
	Fit(values []float64) error
	Transform(values []float64) []float64
	Inverse(values []float64) []float64
}

func New(mode Mode) (Scaler, error) {
	switch mode {
	case None:
		return &identityScaler{}, nil
	case Standardization:
		return &standardScaler{}, nil
	case MinMax:
		return &minMaxScaler{}, nil
	case Normalization:
		return &normScaler{}, nil
	default:
		return nil, fmt.Errorf("unknown scaling mode %q", mode)
	}
}

// identityScaler is the explicit "no scaling" marker: data passes through
// unchanged in both directions.
type identityScaler struct{}

func (s *identityScaler) Mode() Mode              { return None }
func (s *identityScaler) Fit(v []float64) error   { return checkFit(v) }
func (s *identityScaler) Transform(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x })
}
func (s *identityScaler) Inverse(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x })
}

// standardScaler rescales to zero mean and unit variance over the fit data.
type standardScaler struct {
	mean float64
	std  float64
}

func (s *standardScaler) Mode() Mode { return Standardization }

func (s *standardScaler) Fit(values []float64) error {
	if err := checkFit(values); err != nil {
		return err
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	s.mean = sum / float64(len(values))
	var ss float64
	for _, v := range values {
		d := v - s.mean
		ss += d * d
	}
	s.std = math.Sqrt(ss / float64(len(values)))
	// Constant input: keep the transform invertible.
	if s.std == 0 {
		s.std = 1
	}
	return nil
}

func (s *standardScaler) Transform(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return (x - s.mean) / s.std })
}

func (s *standardScaler) Inverse(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x*s.std + s.mean })
}

// minMaxScaler rescales the fit range linearly onto [0, 1].
type minMaxScaler struct {
	min  float64
	span float64
}

func (s *minMaxScaler) Mode() Mode { return MinMax }

func (s *minMaxScaler) Fit(values []float64) error {
	if err := checkFit(values); err != nil {
		return err
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	s.min = lo
	s.span = hi - lo
	if s.span == 0 {
		s.span = 1
	}
	return nil
}

func (s *minMaxScaler) Transform(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return (x - s.min) / s.span })
}

func (s *minMaxScaler) Inverse(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x*s.span + s.min })
}

// normScaler divides by the Euclidean norm of the fit data, so the fitted
// vector has unit norm and the inverse is an exact multiplication back.
type normScaler struct {
	norm float64
}

func (s *normScaler) Mode() Mode { return Normalization }

func (s *normScaler) Fit(values []float64) error {
	if err := checkFit(values); err != nil {
		return err
	}
	var ss float64
	for _, v := range values {
		ss += v * v
	}
	s.norm = math.Sqrt(ss)
	if s.norm == 0 {
		s.norm = 1
	}
	return nil
}

func (s *normScaler) Transform(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x / s.norm })
}

func (s *normScaler) Inverse(v []float64) []float64 {
	return apply(v, func(x float64) float64 { return x * s.norm })
}

func checkFit(values []float64) error {
	if len(values) == 0 {
		return errors.New("cannot fit scaler on empty data")
	}
	return nil
}

func apply(values []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = f(v)
	}
	return out
}

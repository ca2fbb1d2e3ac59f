package model

import "time"

// ForecastPoint is one predicted observation, in original price units.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Forecast is the predicted continuation of a price series, one point per
// horizon step, in the same order as the future dates it was built from.
type Forecast []ForecastPoint

func (f Forecast) Dates() []time.Time {
	out := make([]time.Time, len(f))
	for i, p := range f {
		out[i] = p.Date
	}
	return out
}

func (f Forecast) Prices() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.Price
	}
	return out
}

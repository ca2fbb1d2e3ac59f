package model

import (
	"errors"
	"fmt"
	"time"
)

// PricePoint is one observation of a price series.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is an ordered sequence of price observations with strictly
// increasing timestamps. It is read-only once constructed: the pipeline never
// mutates it, and accessors hand out copies.
type PriceSeries struct {
	points []PricePoint
}

func NewPriceSeries(points []PricePoint) (PriceSeries, error) {
	if len(points) == 0 {
		return PriceSeries{}, errors.New("price series is empty")
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Date.After(points[i-1].Date) {
			return PriceSeries{}, fmt.Errorf(
				"price series dates must be strictly increasing: index %d (%s) does not follow %s",
				i,
				points[i].Date.Format(time.RFC3339),
				points[i-1].Date.Format(time.RFC3339),
			)
		}
	}
	cp := make([]PricePoint, len(points))
	copy(cp, points)
	return PriceSeries{points: cp}, nil
}

func (s PriceSeries) Len() int { return len(s.points) }

func (s PriceSeries) Points() []PricePoint {
	cp := make([]PricePoint, len(s.points))
	copy(cp, s.points)
	return cp
}

func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Price
	}
	return out
}

func (s PriceSeries) Dates() []time.Time {
	out := make([]time.Time, len(s.points))
	for i, p := range s.points {
		out[i] = p.Date
	}
	return out
}

// Last returns the most recent observation. Panics on a zero-value series;
// NewPriceSeries guarantees at least one point.
func (s PriceSeries) Last() PricePoint {
	return s.points[len(s.points)-1]
}

// TruncateAt returns the sub-series of observations at or before cutoff.
// The result may be empty.
func (s PriceSeries) TruncateAt(cutoff time.Time) PriceSeries {
	n := len(s.points)
	for n > 0 && s.points[n-1].Date.After(cutoff) {
		n--
	}
	return PriceSeries{points: s.points[:n]}
}

// FutureDates produces the next n timestamps after the series end, spaced by
// the interval between the last two observations (24h for a single-point
// series). These are the horizon dates a forecast is aligned to.
func (s PriceSeries) FutureDates(n int) []time.Time {
	step := 24 * time.Hour
	if len(s.points) >= 2 {
		step = s.points[len(s.points)-1].Date.Sub(s.points[len(s.points)-2].Date)
	}
	out := make([]time.Time, 0, n)
	cur := s.points[len(s.points)-1].Date
	for i := 0; i < n; i++ {
		cur = cur.Add(step)
		out = append(out, cur)
	}
	return out
}

package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"price-forecast/internal/model"
)

// LoadSeriesCSV reads a price series from a two-column CSV (date, price).
// A header row is skipped if its first cell does not parse as a date.
func LoadSeriesCSV(path string) (model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PriceSeries{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return model.PriceSeries{}, err
	}

	points := make([]model.PricePoint, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return model.PriceSeries{}, fmt.Errorf("row %d: want 2 columns (date, price), got %d", i, len(rec))
		}
		d, err := ParseDate(rec[0])
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return model.PriceSeries{}, fmt.Errorf("row %d: %w", i, err)
		}
		price, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("row %d: bad price %q: %w", i, rec[1], err)
		}
		points = append(points, model.PricePoint{Date: d, Price: price})
	}
	return model.NewPriceSeries(points)
}

package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"price-forecast/internal/model"
)

// seriesFile matches the JSON shape of a saved price series:
//
//	{
//	  "data": [ {"date": "2024-01-02", "price": 101.5}, ... ]
//	}
type seriesFile struct {
	Data []seriesRow `json:"data"`
}

type seriesRow struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// LoadSeriesJSON reads a price series from a JSON file. Dates may be RFC3339
// or plain YYYY-MM-DD.
func LoadSeriesJSON(path string) (model.PriceSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.PriceSeries{}, err
	}
	var f seriesFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return model.PriceSeries{}, err
	}
	points := make([]model.PricePoint, 0, len(f.Data))
	for i, row := range f.Data {
		d, err := ParseDate(row.Date)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("row %d: %w", i, err)
		}
		points = append(points, model.PricePoint{Date: d, Price: row.Price})
	}
	return model.NewPriceSeries(points)
}

// ParseDate accepts the timestamp layouts that show up in exported series.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

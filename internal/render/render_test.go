package render

import (
	"math"
	"testing"
	"time"

	"price-forecast/internal/analysis"
	"price-forecast/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPredictionTable(t *testing.T) {
	fc := model.Forecast{
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Price: 105.25},
		{Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Price: 98.5},
	}

	out := PredictionTable(100, fc)

	assert.Contains(t, out, "100.00 $")
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "105.25 $")
	assert.Contains(t, out, "98.50 $")
}

func TestKPITable(t *testing.T) {
	out := KPITable(model.Scorecard{MAPE: 15, R2: 0.84, MAE: 2, MSE: 4, RMSE: 2})

	assert.Contains(t, out, "MAPE")
	assert.Contains(t, out, "15.000 %")
	assert.Contains(t, out, "0.840")
	assert.Contains(t, out, "RMSE")
}

func TestKPITableDegenerateMAPE(t *testing.T) {
	out := KPITable(model.Scorecard{MAPE: math.Inf(1), Degenerate: true})
	assert.Contains(t, out, "inf %")
}

func TestComparisonRows(t *testing.T) {
	dates := []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	out := ComparisonRows(dates, []float64{10}, []float64{12})

	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "+20.00 %")
}

func TestRankTable(t *testing.T) {
	out := RankTable([]analysis.PredictorRank{
		{Name: "trend", Windows: 9, Card: model.Scorecard{RMSE: 0.1, MAE: 0.08, MAPE: 1.2}},
		{Name: "naive", Windows: 9, Card: model.Scorecard{RMSE: 2.5, MAE: 2, MAPE: 4}},
	})

	assert.Contains(t, out, "trend")
	assert.Contains(t, out, "naive")
	assert.Contains(t, out, "0.100")
}

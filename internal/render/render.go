package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"price-forecast/internal/analysis"
	"price-forecast/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	actualStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// PredictionTable renders a forecast as date/price rows, each price colored
// against the last actual price: green above, red below.
func PredictionTable(lastPrice float64, fc model.Forecast) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Actual price: %s\n\n", actualStyle.Render(fmt.Sprintf("%.2f $", lastPrice))))
	b.WriteString(headerStyle.Render("Prediction:"))
	b.WriteString("\n")
	for _, p := range fc {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			p.Date.Format("2006-01-02"),
			priceCell(p.Price, lastPrice),
		))
	}
	return b.String()
}

func priceCell(val, last float64) string {
	s := fmt.Sprintf("%.2f $", val)
	if val > last {
		return upStyle.Render(s)
	}
	return downStyle.Render(s)
}

// KPITable renders a scorecard in a fixed metric order.
func KPITable(card model.Scorecard) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("KPIs"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-6s %s %%\n", "MAPE", fmtMetric(card.MAPE)))
	b.WriteString(fmt.Sprintf("%-6s %s\n", "R2", fmtMetric(card.R2)))
	b.WriteString(fmt.Sprintf("%-6s %s\n", "MAE", fmtMetric(card.MAE)))
	b.WriteString(fmt.Sprintf("%-6s %s\n", "MSE", fmtMetric(card.MSE)))
	b.WriteString(fmt.Sprintf("%-6s %s\n", "RMSE", fmtMetric(card.RMSE)))
	return b.String()
}

func fmtMetric(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.3f", v)
}

// ComparisonRows renders per-step "actual x predicted" lines with the signed
// percentage error colored by direction. Used for backtest output where the
// forecast overlaps known prices.
func ComparisonRows(dates []time.Time, actual, predicted []float64) string {
	var b strings.Builder
	for i := range actual {
		errPct := 0.0
		if actual[i] != 0 {
			errPct = 100 * (predicted[i] - actual[i]) / actual[i]
		}
		cell := fmt.Sprintf("%+.2f %%", errPct)
		if predicted[i] > actual[i] {
			cell = upStyle.Render(cell)
		} else {
			cell = downStyle.Render(cell)
		}
		b.WriteString(fmt.Sprintf("%s  %8.2f    x    %s    %s\n",
			dates[i].Format("2006-01-02"),
			actual[i],
			actualStyle.Render(fmt.Sprintf("%8.2f", predicted[i])),
			cell,
		))
	}
	return b.String()
}

// RankTable renders predictor rankings, best (lowest RMSE) first.
func RankTable(ranks []analysis.PredictorRank) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(
		fmt.Sprintf("%-4s %-10s %-8s %-10s %-10s %-10s", "rank", "predictor", "windows", "rmse", "mae", "mape")))
	b.WriteString("\n")
	for i, r := range ranks {
		b.WriteString(fmt.Sprintf("%-4d %-10s %-8d %-10s %-10s %-10s\n",
			i+1,
			r.Name,
			r.Windows,
			fmtMetric(r.Card.RMSE),
			fmtMetric(r.Card.MAE),
			fmtMetric(r.Card.MAPE),
		))
	}
	return b.String()
}

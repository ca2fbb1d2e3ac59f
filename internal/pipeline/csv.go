package pipeline

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// WriteEvalCSV exports an evaluation ledger, one row per (window, step).
func WriteEvalCSV(path string, rows []EvalRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"window",
		"step",
		"target_date",
		"actual",
		"predicted",
		"abs_err",
		"window_rmse",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		for step := range r.Actual {
			diff := r.Actual[step] - r.Predicted[step]
			if diff < 0 {
				diff = -diff
			}
			row := []string{
				strconv.Itoa(r.Index),
				strconv.Itoa(step),
				fmtTime(r.TargetDates[step]),
				fmtFloat(r.Actual[step]),
				fmtFloat(r.Predicted[step]),
				fmtFloat(diff),
				fmtFloat(r.Card.RMSE),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

package pipeline

import (
	"fmt"
	"time"

	"price-forecast/internal/model"
	"price-forecast/internal/predictor"
	"price-forecast/internal/scale"
)

// EvalRow is one validation window's outcome: the held-back actuals against
// the predictor's output for the same dates, back in price units. This is the
// primary artifact for "how wrong was the model, where".
type EvalRow struct {
	Index int

	TargetDates []time.Time
	Actual      []float64
	Predicted   []float64

	Card model.Scorecard
}

// EvalResult aggregates the per-window rows plus one scorecard over the
// concatenated validation vectors.
type EvalResult struct {
	Rows      []EvalRow
	Aggregate model.Scorecard
}

// Evaluate runs the predictor across every validation window of a prepared
// run and scores it. Predictions and targets are inverse-transformed through
// the run's fitted scaler before scoring, so all metrics are in price units.
//
// With no validation windows (validation fraction 0, or too few pairs) the
// result is empty and the caller decides what to report.
func Evaluate(prep *Prepared, pred predictor.Predictor) (*EvalResult, error) {
	if prep == nil || prep.InsufficientData {
		return nil, fmt.Errorf("nothing to evaluate: prepared data is missing")
	}
	if len(prep.ValidInputs) == 0 {
		return &EvalResult{}, nil
	}

	res := &EvalResult{Rows: make([]EvalRow, 0, len(prep.ValidInputs))}
	var allActual, allPredicted []float64

	for i, input := range prep.ValidInputs {
		target := prep.ValidTargets[i]

		raw, err := pred.Predict(input, len(target))
		if err != nil {
			return nil, fmt.Errorf("%w: %s on validation window %d: %v",
				ErrPredictorFailure, pred.Name(), i, err)
		}
		if len(raw) != len(target) {
			return nil, fmt.Errorf("%w: %s returned %d values for horizon %d on validation window %d",
				ErrPredictorFailure, pred.Name(), len(raw), len(target), i)
		}

		actual := target
		predicted := raw
		if prep.Scaler != nil && prep.Scaler.Mode() != scale.None {
			actual = prep.Scaler.Inverse(target)
			predicted = prep.Scaler.Inverse(raw)
		}

		card, err := Score(actual, predicted)
		if err != nil {
			return nil, fmt.Errorf("score validation window %d: %w", i, err)
		}

		res.Rows = append(res.Rows, EvalRow{
			Index:       i,
			TargetDates: prep.ValidTargetDates[i],
			Actual:      actual,
			Predicted:   predicted,
			Card:        card,
		})
		allActual = append(allActual, actual...)
		allPredicted = append(allPredicted, predicted...)
	}

	agg, err := Score(allActual, allPredicted)
	if err != nil {
		return nil, fmt.Errorf("aggregate score: %w", err)
	}
	res.Aggregate = agg
	return res, nil
}

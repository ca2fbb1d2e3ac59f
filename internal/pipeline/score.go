package pipeline

import (
	"fmt"
	"math"

	"price-forecast/internal/model"
)

// Score computes the fixed accuracy bundle for one (actual, predicted) pair
// of equal-length vectors in original price units.
//
// A zero actual value makes the percentage error undefined; MAPE is then
// +Inf with the scorecard's Degenerate flag set, rather than an error.
func Score(actual, predicted []float64) (model.Scorecard, error) {
	if len(actual) == 0 || len(predicted) == 0 {
		return model.Scorecard{}, fmt.Errorf("cannot score empty vectors")
	}
	if len(actual) != len(predicted) {
		return model.Scorecard{}, fmt.Errorf("%w: %d actual vs %d predicted",
			ErrShapeMismatch, len(actual), len(predicted))
	}

	n := float64(len(actual))
	var card model.Scorecard

	var sumPct, sumAbs, sumSq float64
	for i := range actual {
		diff := actual[i] - predicted[i]
		sumAbs += math.Abs(diff)
		sumSq += diff * diff
		if actual[i] == 0 {
			card.Degenerate = true
		} else {
			sumPct += math.Abs(diff / actual[i])
		}
	}

	if card.Degenerate {
		card.MAPE = math.Inf(1)
	} else {
		card.MAPE = sumPct / n * 100
	}
	card.MAE = sumAbs / n
	card.MSE = sumSq / n
	card.RMSE = math.Sqrt(card.MSE)
	card.R2 = rSquared(actual, sumSq)
	return card, nil
}

// rSquared is the coefficient of determination 1 - SSres/SStot. For constant
// actuals SStot is zero and the score is 1 for a perfect fit, 0 otherwise.
func rSquared(actual []float64, ssRes float64) float64 {
	var mean float64
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	var ssTot float64
	for _, v := range actual {
		d := v - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

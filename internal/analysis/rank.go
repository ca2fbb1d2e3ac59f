package analysis

import (
	"sort"

	"price-forecast/internal/model"
	"price-forecast/internal/pipeline"
	"price-forecast/internal/predictor"
)

// PredictorRank is one predictor's aggregate accuracy over a prepared run's
// validation windows.
type PredictorRank struct {
	Name    string
	Windows int
	Card    model.Scorecard
}

// RankPredictors evaluates each named predictor on the same prepared data and
// sorts ascending by aggregate RMSE. Predictors that fail to build or
// evaluate are skipped; comparing the survivors is still useful.
func RankPredictors(prep *pipeline.Prepared, names []string) []PredictorRank {
	out := make([]PredictorRank, 0, len(names))
	for _, name := range names {
		pred, err := predictor.New(name, nil)
		if err != nil {
			continue
		}
		res, err := pipeline.Evaluate(prep, pred)
		if err != nil || len(res.Rows) == 0 {
			continue
		}
		out = append(out, PredictorRank{
			Name:    name,
			Windows: len(res.Rows),
			Card:    res.Aggregate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Card.RMSE < out[j].Card.RMSE
	})
	return out
}

package pipeline

import "errors"

var (
	// ErrShapeMismatch is returned by Score when the actual and predicted
	// vectors differ in length.
	ErrShapeMismatch = errors.New("shape mismatch between actual and predicted")

	// ErrPredictorFailure wraps any error coming out of the external
	// predictor, including a malformed output shape. It is propagated
	// unchanged to the caller; the pipeline never retries.
	ErrPredictorFailure = errors.New("predictor failure")
)

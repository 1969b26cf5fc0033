package estimator

import "errors"

// Sentinel errors for the estimator package.
var (
	// ErrZeroGamma indicates a Monte-Carlo sample count of zero was
	// requested. Zero samples cannot produce a probability estimate and
	// must be rejected rather than silently returning zeros.
	ErrZeroGamma = errors.New("estimator: sample count must be positive")

	// ErrShapeMismatch indicates the belief store and permutation index
	// passed to an estimator disagree on candidate count, or one of them
	// is nil.
	ErrShapeMismatch = errors.New("estimator: belief and index shape mismatch")
)

// Package dataset loads or generates the rankings a demonstration run
// needs: a training set used to build the initial belief, and a
// ground-truth rating matrix the oracle answers queries against.
//
// This package is a driver-harness concern, not part of the core
// engine: cmd/bordaquery uses it to turn a config.Config into inputs
// for belief.NewFromTraining and oracle.NewFixedRatings; nothing in
// permutation, belief, borda, estimator, heuristic, certificate,
// transitivity, or controller imports it.
package dataset

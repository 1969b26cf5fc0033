// Package estimator provides Monte-Carlo estimates of two quantities the
// controller needs every round: each candidate's probability of being the
// eventual Borda winner, and the expected gap between the current
// favorite's score and the true winner's score.
//
// Both estimators take gamma (WinProba) or NumSamples (ExpectedLoss)
// draws, each drawing one full ranking per voter from that voter's belief
// row, score the draw with package borda, and average the outcome across
// draws. Sampling is parallelized across runtime.GOMAXPROCS(0) workers
// with deterministic substreams derived via internal/rng, so a given
// seed, sample count and GOMAXPROCS always produce the same estimate
// regardless of scheduling order; a different GOMAXPROCS splits the
// samples differently and can change the estimate.
package estimator

// Package bordaquery is an adaptive query-selection engine for group Borda
// voting under expensive pairwise preference queries.
//
// What is bordaquery?
//
//	A small, deterministic library that brings together:
//
//	  - Permutation Index: lexicographic enumeration over m! rankings
//	  - Belief Store: per-voter probability distribution over rankings
//	  - Monte-Carlo estimators: winning probability and expected loss
//	  - Heuristics: IGB, ESB, EVOI and EVOI+IGB query-selection strategies
//	  - Certificate Tracker + Transitivity Engine: provable-winner detection
//
// Voters hold private total rankings over a finite candidate set. Asking a
// voter which of two candidates they prefer is expensive, so the Controller
// maintains a probabilistic belief over each voter's ranking and adaptively
// selects the pairwise query expected to shrink uncertainty about the Borda
// winner the most, stopping as soon as a winner is certified (or, absent
// Israeli mode, once the expected Borda-score loss drops to the configured
// threshold).
//
// Everything is organized under per-concern subpackages:
//
//	permutation/  — permutation enumeration and index lookups
//	belief/       — per-voter posterior over rankings
//	borda/        — Borda scoring, concrete and expected
//	estimator/    — Monte-Carlo winning-probability / expected-loss
//	heuristic/    — IGB / ESB / EVOI / EVOI+IGB query selection
//	certificate/  — p_min/p_max tracking, necessary-winner detection
//	transitivity/ — forward/backward closure over recorded preferences
//	oracle/       — deterministic preference lookup over a rating matrix
//	config/       — run configuration and validation
//	controller/   — the adaptive query loop
//
// and two outer collaborators that sit outside the core engine:
//
//	internal/dataset/ — sushi/random dataset loaders (driver harness)
//	cmd/bordaquery/   — CLI entry point wiring the above together
//
//	go get github.com/inrae/bordaquery
package bordaquery

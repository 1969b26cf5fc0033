package transitivity

import "github.com/inrae/bordaquery/permutation"

// EngineOptions configures Engine behavior.
type EngineOptions struct {
	// ConditionOnClosure, when true, also conditions the belief on every
	// pair inferred by closure, not just the directly-answered one. Since
	// every direct answer is already conditioned on, an inferred pair
	// normally already carries all of the row's mass and the extra
	// conditioning leaves the row unchanged; it narrows the row only when
	// an earlier conditioning was skipped as inconsistent. The default
	// (false) conditions only on directly-answered pairs.
	ConditionOnClosure bool
}

// Engine tracks, per voter, the set of candidates known to be inferior
// to each candidate (the dominance lists), and applies one step of
// transitive closure each time a new pairwise answer arrives.
type Engine struct {
	dominance [][]map[int]struct{}
	opts      EngineOptions
}

// Outcome reports what Apply did: the canonical best/worst pair that was
// recorded, and every additional pair inferred by closure this call.
type Outcome struct {
	Best     int
	Worst    int
	Inferred []permutation.Query

	// Inconsistent is true if conditioning the belief on the direct
	// answer, or on any closure-inferred pair (only possible when
	// ConditionOnClosure is set), hit belief.ErrInconsistentEvidence.
	// The certificate and dominance lists are still updated in this
	// case; only the belief row was left unchanged for that event.
	Inconsistent bool
}

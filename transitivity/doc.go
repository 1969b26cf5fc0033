// Package transitivity applies a single step of transitive closure after
// every answered pairwise query.
//
// Recording that voter v prefers best to worst lets the engine infer,
// without asking, that best also beats everything already known to be
// beaten by worst (forward closure), and that everything already known
// to beat best also beats worst (backward closure). Each inferred pair
// updates the certificate bounds and is marked asked, exactly as if it
// had been queried directly — this is a one-step closure over the
// per-voter dominance lists, not a fixpoint: an inferred pair can itself
// enable a further inference only on a later call, once its own entry
// has been recorded in the dominance lists.
package transitivity

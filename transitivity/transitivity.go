package transitivity

import (
	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/certificate"
	"github.com/inrae/bordaquery/permutation"
)

// NewEngine returns an Engine with empty dominance lists for numVoters
// voters over numCandidates candidates.
func NewEngine(numVoters, numCandidates int, opts EngineOptions) *Engine {
	dominance := make([][]map[int]struct{}, numVoters)
	for v := range dominance {
		dominance[v] = make([]map[int]struct{}, numCandidates)
		for c := range dominance[v] {
			dominance[v][c] = make(map[int]struct{})
		}
	}
	return &Engine{dominance: dominance, opts: opts}
}

// Apply records that voter v answered the canonical query (a, b) with
// answer meaning "v prefers a to b", conditions store's row for v
// accordingly, bumps tracker's bounds, and propagates one step of
// transitive closure over the dominance lists built from every answer
// seen so far. Every pair touched — the direct answer and any inferred
// pairs — is marked asked.
func (e *Engine) Apply(answer bool, v, a, b int, store *belief.Store, tracker *certificate.Tracker, asked *certificate.AskedSet) (Outcome, error) {
	if v < 0 || v >= len(e.dominance) {
		return Outcome{}, ErrVoterOutOfRange
	}
	if a < 0 || a >= len(e.dominance[v]) || b < 0 || b >= len(e.dominance[v]) {
		return Outcome{}, ErrCandidateOutOfRange
	}

	best, worst := a, b
	if !answer {
		best, worst = b, a
	}

	var inconsistent bool
	if _, err := store.Condition(v, best, worst); err != nil {
		if err != belief.ErrInconsistentEvidence {
			return Outcome{}, err
		}
		inconsistent = true
	}

	if err := tracker.Bump(best, worst); err != nil {
		return Outcome{}, err
	}

	directQuery, err := permutation.NewQuery(v, a, b)
	if err != nil {
		return Outcome{}, err
	}
	asked.Add(directQuery)

	e.dominance[v][best][worst] = struct{}{}

	var inferred []permutation.Query

	// Forward closure: anything already known inferior to worst is now
	// also known inferior to best.
	for alt := range e.dominance[v][worst] {
		if alt == best {
			continue
		}
		if _, ok := e.dominance[v][best][alt]; ok {
			continue
		}
		e.dominance[v][best][alt] = struct{}{}
		if err := tracker.Bump(best, alt); err != nil {
			return Outcome{}, err
		}
		q, err := permutation.NewQuery(v, alt, best)
		if err != nil {
			return Outcome{}, err
		}
		asked.Add(q)
		inferred = append(inferred, q)
		if e.opts.ConditionOnClosure {
			if _, err := store.Condition(v, best, alt); err != nil {
				if err != belief.ErrInconsistentEvidence {
					return Outcome{}, err
				}
				inconsistent = true
			}
		}
	}

	// Backward closure: anything already known superior to best is now
	// also known superior to worst.
	for cand := range e.dominance[v] {
		if cand == best || cand == worst {
			continue
		}
		if _, dominatesBest := e.dominance[v][cand][best]; !dominatesBest {
			continue
		}
		if _, already := e.dominance[v][cand][worst]; already {
			continue
		}
		e.dominance[v][cand][worst] = struct{}{}
		if err := tracker.Bump(cand, worst); err != nil {
			return Outcome{}, err
		}
		q, err := permutation.NewQuery(v, worst, cand)
		if err != nil {
			return Outcome{}, err
		}
		asked.Add(q)
		inferred = append(inferred, q)
		if e.opts.ConditionOnClosure {
			if _, err := store.Condition(v, cand, worst); err != nil {
				if err != belief.ErrInconsistentEvidence {
					return Outcome{}, err
				}
				inconsistent = true
			}
		}
	}

	return Outcome{Best: best, Worst: worst, Inferred: inferred, Inconsistent: inconsistent}, nil
}

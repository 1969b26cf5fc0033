package heuristic

import (
	"fmt"
	"math/rand"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/certificate"
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/permutation"
)

// Context carries everything a Strategy needs to score candidate
// queries: the permutation index, the current belief, the set of
// queries already asked, the Monte-Carlo configuration for strategies
// that call estimator.WinProba, and the RNG used for uniform tie-break.
type Context struct {
	Index *permutation.Index
	Belief *belief.Store
	Asked *certificate.AskedSet
	MC    estimator.MCConfig
	RNG   *rand.Rand
}

// Strategy selects the next query to ask.
type Strategy interface {
	SelectQuery(ctx Context) (permutation.Query, float64, error)
}

// ScoreTable is a dense (voter, unordered candidate pair) value table.
// It replaces the original prototype's string-keyed dictionaries
// ('IG(%s,c%s>c%s)'-style keys) with a flat array indexed by position,
// which both heuristics and controller logging can address directly.
type ScoreTable struct {
	numVoters int
	pairs     [][2]int
	pairIndex map[[2]int]int
	values    [][]float64
}

// NewScoreTable allocates a table for numVoters voters over every
// unordered pair of numCandidates candidates, all values initialized to
// zero.
func NewScoreTable(numVoters, numCandidates int) *ScoreTable {
	var pairs [][2]int
	pairIndex := make(map[[2]int]int)
	for a := 0; a < numCandidates; a++ {
		for b := a + 1; b < numCandidates; b++ {
			pairIndex[[2]int{a, b}] = len(pairs)
			pairs = append(pairs, [2]int{a, b})
		}
	}
	values := make([][]float64, numVoters)
	for v := range values {
		values[v] = make([]float64, len(pairs))
	}
	return &ScoreTable{numVoters: numVoters, pairs: pairs, pairIndex: pairIndex, values: values}
}

// Set stores val for voter v's (a, b) pair, a and b in either order.
func (t *ScoreTable) Set(v, a, b int, val float64) {
	if a > b {
		a, b = b, a
	}
	idx, ok := t.pairIndex[[2]int{a, b}]
	if !ok {
		return
	}
	t.values[v][idx] = val
}

// Get returns the stored value for voter v's (a, b) pair.
func (t *ScoreTable) Get(v, a, b int) float64 {
	if a > b {
		a, b = b, a
	}
	idx, ok := t.pairIndex[[2]int{a, b}]
	if !ok {
		return 0
	}
	return t.values[v][idx]
}

// Label renders a human-readable tag for log lines; never used on the
// scoring hot path.
func (t *ScoreTable) Label(v, a, b int) string {
	return fmt.Sprintf("(v%d,c%d,c%d)", v, a, b)
}

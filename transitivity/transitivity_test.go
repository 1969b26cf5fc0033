package transitivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/certificate"
	"github.com/inrae/bordaquery/permutation"
	"github.com/inrae/bordaquery/transitivity"
)

func setup(t *testing.T, m, n int) (*belief.Store, *certificate.Tracker, *certificate.AskedSet, *permutation.Index) {
	t.Helper()
	idx, err := permutation.NewIndex(m)
	require.NoError(t, err)
	b, err := belief.NewUniform(idx, n)
	require.NoError(t, err)
	tr, err := certificate.New(m, n)
	require.NoError(t, err)
	return b, tr, certificate.NewAskedSet(), idx
}

func TestApply_DirectAnswerBumpsCertificate(t *testing.T) {
	b, tr, asked, _ := setup(t, 3, 1)
	eng := transitivity.NewEngine(1, 3, transitivity.EngineOptions{})

	out, err := eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Best)
	assert.Equal(t, 1, out.Worst)
	assert.Equal(t, float64(1), tr.PMin[0])
	assert.Equal(t, float64(1), tr.PMax[1])

	q, err := permutation.NewQuery(0, 0, 1)
	require.NoError(t, err)
	assert.True(t, asked.Contains(q))
}

func TestApply_ForwardClosure(t *testing.T) {
	b, tr, asked, _ := setup(t, 4, 1)
	eng := transitivity.NewEngine(1, 4, transitivity.EngineOptions{})

	// c1 > c2 (established first): 1 dominates 2.
	_, err := eng.Apply(true, 0, 1, 2, b, tr, asked)
	require.NoError(t, err)

	// c0 > c1: 0 dominates 1. By forward closure, 0 should also be
	// inferred to dominate 2 (since 1 already dominates 2).
	out, err := eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)

	found := false
	for _, q := range out.Inferred {
		if q.A == 0 && q.B == 2 {
			found = true
		}
	}
	assert.True(t, found, "expected (0,2) to be inferred by forward closure, got %+v", out.Inferred)

	q02, err := permutation.NewQuery(0, 0, 2)
	require.NoError(t, err)
	assert.True(t, asked.Contains(q02))
}

func TestApply_BackwardClosure(t *testing.T) {
	b, tr, asked, _ := setup(t, 4, 1)
	eng := transitivity.NewEngine(1, 4, transitivity.EngineOptions{})

	// c0 > c1: 0 dominates 1.
	_, err := eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)

	// c1 > c2: 1 dominates 2. Backward closure: since 0 already
	// dominates 1 (the new "best"), 0 should also be inferred to
	// dominate 2 (the new "worst").
	out, err := eng.Apply(true, 0, 1, 2, b, tr, asked)
	require.NoError(t, err)

	found := false
	for _, q := range out.Inferred {
		if q.A == 0 && q.B == 2 {
			found = true
		}
	}
	assert.True(t, found, "expected (0,2) to be inferred by backward closure, got %+v", out.Inferred)
}

func TestApply_VoterOutOfRange(t *testing.T) {
	b, tr, asked, _ := setup(t, 3, 1)
	eng := transitivity.NewEngine(1, 3, transitivity.EngineOptions{})
	_, err := eng.Apply(true, 5, 0, 1, b, tr, asked)
	require.ErrorIs(t, err, transitivity.ErrVoterOutOfRange)
}

func TestApply_CandidateOutOfRange(t *testing.T) {
	b, tr, asked, _ := setup(t, 3, 1)
	eng := transitivity.NewEngine(1, 3, transitivity.EngineOptions{})
	_, err := eng.Apply(true, 0, 0, 9, b, tr, asked)
	require.ErrorIs(t, err, transitivity.ErrCandidateOutOfRange)
}

func TestApply_ContradictoryAnswerMarksInconsistent(t *testing.T) {
	b, tr, asked, _ := setup(t, 3, 1)
	eng := transitivity.NewEngine(1, 3, transitivity.EngineOptions{})

	out, err := eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)
	assert.False(t, out.Inconsistent)

	// Answering the reverse of an already-conditioned pair drives the
	// belief's prior mass on "1 before 0" to zero.
	out, err = eng.Apply(true, 0, 1, 0, b, tr, asked)
	require.NoError(t, err)
	assert.True(t, out.Inconsistent)
}

func TestApply_SingleAnswerOverEmptyDominanceInfersNothing(t *testing.T) {
	// m=4, n=3: one answer (v=0 prefers 0 to 3) against an otherwise
	// untouched dominance list infers nothing, and the certificate moves
	// by exactly one bump on each side.
	b, tr, asked, _ := setup(t, 4, 3)
	eng := transitivity.NewEngine(3, 4, transitivity.EngineOptions{})

	out, err := eng.Apply(true, 0, 0, 3, b, tr, asked)
	require.NoError(t, err)
	assert.Empty(t, out.Inferred)
	assert.Equal(t, float64(1), tr.PMin[0])
	assert.Equal(t, float64(8), tr.PMax[3])
}

func TestApply_ChainOfAnswersClosesFullOrderByBackwardClosure(t *testing.T) {
	// m=4, n=1: v=0 answers 0>1, then 1>2, then 2>3. Forward closure
	// never fires (the worst side of each new answer starts with an
	// empty dominance list), but backward closure must chain 0 and 1
	// through to 3 on the third answer.
	b, tr, asked, _ := setup(t, 4, 1)
	eng := transitivity.NewEngine(1, 4, transitivity.EngineOptions{})

	out1, err := eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)
	assert.Empty(t, out1.Inferred)

	out2, err := eng.Apply(true, 0, 1, 2, b, tr, asked)
	require.NoError(t, err)
	require.Len(t, out2.Inferred, 1)
	assert.Equal(t, permutation.Query{Voter: 0, A: 0, B: 2}, out2.Inferred[0])

	out3, err := eng.Apply(true, 0, 2, 3, b, tr, asked)
	require.NoError(t, err)
	require.Len(t, out3.Inferred, 2)
	assert.Equal(t, permutation.Query{Voter: 0, A: 0, B: 3}, out3.Inferred[0])
	assert.Equal(t, permutation.Query{Voter: 0, A: 1, B: 3}, out3.Inferred[1])

	// The full transitive closure over a single voter's total order
	// 0>1>2>3 certifies exact Borda scores 3,2,1,0.
	assert.Equal(t, []float64{3, 2, 1, 0}, tr.PMin)
	assert.Equal(t, []float64{3, 2, 1, 0}, tr.PMax)

	for _, pair := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		q, err := permutation.NewQuery(0, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, asked.Contains(q), "expected %v to be asked", pair)
	}
}

func TestApply_ConditionOnClosureConditionsInferredPairs(t *testing.T) {
	b, tr, asked, idx := setup(t, 4, 1)
	eng := transitivity.NewEngine(1, 4, transitivity.EngineOptions{ConditionOnClosure: true})

	_, err := eng.Apply(true, 0, 1, 2, b, tr, asked)
	require.NoError(t, err)
	_, err = eng.Apply(true, 0, 0, 1, b, tr, asked)
	require.NoError(t, err)

	// With forward closure conditioning enabled, the belief should now
	// assign zero probability to every permutation where 2 precedes 0.
	p, err := b.QueryProbability(0, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, p, 1e-9)
	_ = idx
}

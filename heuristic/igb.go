package heuristic

import (
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/permutation"
)

// IGB is the information-gain heuristic: it favors the query expected
// to most reduce the Shannon entropy of the winning-probability
// distribution.
type IGB struct{}

// SelectQuery implements Strategy.
func (IGB) SelectQuery(ctx Context) (permutation.Query, float64, error) {
	tbl, err := weightedInformationGain(ctx)
	if err != nil {
		return permutation.Query{}, 0, err
	}
	return selectMax(tbl, ctx.Asked, ctx.RNG)
}

// weightedInformationGain builds the per-(voter, pair) weighted
// information-gain table: for each candidate pair (a, b), the
// information gain of learning a>b weighted by its current
// probability, plus the information gain of learning b>a weighted by
// its probability.
func weightedInformationGain(ctx Context) (*ScoreTable, error) {
	m := ctx.Index.M()
	n := ctx.Belief.NumVoters()

	prWinBefore, err := estimator.WinProba(ctx.MC, ctx.Index, ctx.Belief)
	if err != nil {
		return nil, err
	}
	entropyBefore := entropy(prWinBefore)

	tbl := NewScoreTable(n, m)
	for v := 0; v < n; v++ {
		for a := 0; a < m; a++ {
			for b := a + 1; b < m; b++ {
				igAB, err := informationGain(ctx, v, a, b, entropyBefore)
				if err != nil {
					return nil, err
				}
				igBA, err := informationGain(ctx, v, b, a, entropyBefore)
				if err != nil {
					return nil, err
				}
				p1, err := ctx.Belief.QueryProbability(v, a, b)
				if err != nil {
					return nil, err
				}
				p2, err := ctx.Belief.QueryProbability(v, b, a)
				if err != nil {
					return nil, err
				}
				tbl.Set(v, a, b, round(igAB*p1+igBA*p2, 2))
			}
		}
	}
	return tbl, nil
}

// informationGain returns the entropy reduction in the winning-probability
// distribution from conditioning voter v's row on best≻worst.
func informationGain(ctx Context, v, best, worst int, entropyBefore float64) (float64, error) {
	posterior := ctx.Belief.Clone()
	// A zero-mass event leaves the row unchanged; the resulting
	// (unchanged) posterior entropy is meaningful to compute anyway
	// since its weight in the caller's weighted sum is itself zero.
	_, _ = posterior.Condition(v, best, worst)

	prWinAfter, err := estimator.WinProba(ctx.MC, ctx.Index, posterior)
	if err != nil {
		return 0, err
	}
	return entropyBefore - entropy(prWinAfter), nil
}

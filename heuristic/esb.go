package heuristic

import (
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/permutation"
)

// ESB is the expected-score heuristic: it favors the query expected to
// most increase the highest candidate's winning probability.
type ESB struct{}

// SelectQuery implements Strategy.
func (ESB) SelectQuery(ctx Context) (permutation.Query, float64, error) {
	tbl, err := weightedExpectedMax(ctx)
	if err != nil {
		return permutation.Query{}, 0, err
	}
	return selectMax(tbl, ctx.Asked, ctx.RNG)
}

func weightedExpectedMax(ctx Context) (*ScoreTable, error) {
	m := ctx.Index.M()
	n := ctx.Belief.NumVoters()

	prWinBefore, err := estimator.WinProba(ctx.MC, ctx.Index, ctx.Belief)
	if err != nil {
		return nil, err
	}
	maxBefore := maxFloat64(prWinBefore)

	tbl := NewScoreTable(n, m)
	for v := 0; v < n; v++ {
		for a := 0; a < m; a++ {
			for b := a + 1; b < m; b++ {
				emAB, err := expectedMax(ctx, v, a, b, maxBefore)
				if err != nil {
					return nil, err
				}
				emBA, err := expectedMax(ctx, v, b, a, maxBefore)
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
				tbl.Set(v, a, b, round(emAB*p1+emBA*p2, 2))
			}
		}
	}
	return tbl, nil
}

// expectedMax returns the rise in the winning-probability distribution's
// maximum from conditioning voter v's row on best≻worst, relative to
// maxBefore.
func expectedMax(ctx Context, v, best, worst int, maxBefore float64) (float64, error) {
	posterior := ctx.Belief.Clone()
	_, _ = posterior.Condition(v, best, worst)

	prWinAfter, err := estimator.WinProba(ctx.MC, ctx.Index, posterior)
	if err != nil {
		return 0, err
	}
	return maxFloat64(prWinAfter) - maxBefore, nil
}

func maxFloat64(s []float64) float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

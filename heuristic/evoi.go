package heuristic

import (
	"github.com/inrae/bordaquery/borda"
	"github.com/inrae/bordaquery/permutation"
)

// EVOI is the expected-value-of-information heuristic: it favors the
// query expected to most increase the best candidate's expected Borda
// score, without resorting to Monte-Carlo sampling of the winning
// probability (it reasons directly in expected-score space).
type EVOI struct{}

// SelectQuery implements Strategy.
func (EVOI) SelectQuery(ctx Context) (permutation.Query, float64, error) {
	tbl, err := expectedValueOfInformation(ctx)
	if err != nil {
		return permutation.Query{}, 0, err
	}
	return selectMax(tbl, ctx.Asked, ctx.RNG)
}

// EVOIThenIGB runs EVOI first; if the selected query's value is exactly
// zero (no candidate query carries any expected-score benefit), it
// falls back to IGB so the search still makes progress.
type EVOIThenIGB struct{}

// SelectQuery implements Strategy.
func (EVOIThenIGB) SelectQuery(ctx Context) (permutation.Query, float64, error) {
	q, value, err := (EVOI{}).SelectQuery(ctx)
	if err != nil {
		return permutation.Query{}, 0, err
	}
	if value == 0 {
		return (IGB{}).SelectQuery(ctx)
	}
	return q, value, nil
}

func expectedValueOfInformation(ctx Context) (*ScoreTable, error) {
	m := ctx.Index.M()
	n := ctx.Belief.NumVoters()

	scoreInit, err := borda.Expected(ctx.Index, ctx.Belief)
	if err != nil {
		return nil, err
	}
	maxInit := maxFloat64(scoreInit)

	tbl := NewScoreTable(n, m)
	for v := 0; v < n; v++ {
		for a := 0; a < m; a++ {
			for b := a + 1; b < m; b++ {
				p1, err := ctx.Belief.QueryProbability(v, a, b)
				if err != nil {
					return nil, err
				}
				p2, err := ctx.Belief.QueryProbability(v, b, a)
				if err != nil {
					return nil, err
				}
				evAB, err := expectedValue(ctx, v, a, b, p1)
				if err != nil {
					return nil, err
				}
				evBA, err := expectedValue(ctx, v, b, a, p2)
				if err != nil {
					return nil, err
				}
				tbl.Set(v, a, b, round(evAB*p1+evBA*p2-maxInit, 4))
			}
		}
	}
	return tbl, nil
}

// expectedValue returns the highest expected Borda score reachable after
// conditioning voter v's row on best≻worst, or 0 if that event has zero
// prior probability (matching the informativeness of an event that can
// never occur).
func expectedValue(ctx Context, v, best, worst int, priorProba float64) (float64, error) {
	if priorProba <= 0 {
		return 0, nil
	}
	posterior := ctx.Belief.Clone()
	_, _ = posterior.Condition(v, best, worst)

	scoreCond, err := borda.Expected(ctx.Index, posterior)
	if err != nil {
		return 0, err
	}
	return maxFloat64(scoreCond), nil
}

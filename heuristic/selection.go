package heuristic

import (
	"math"
	"math/rand"

	"github.com/inrae/bordaquery/certificate"
	"github.com/inrae/bordaquery/permutation"
)

// selectMax walks every (voter, pair) entry in tbl not present in asked,
// and returns the query with the maximum value — ties broken uniformly
// at random via rng.
func selectMax(tbl *ScoreTable, asked *certificate.AskedSet, rng *rand.Rand) (permutation.Query, float64, error) {
	type candidate struct {
		q     permutation.Query
		value float64
	}
	var best []candidate
	bestValue := math.Inf(-1)

	for v := 0; v < tbl.numVoters; v++ {
		for _, pair := range tbl.pairs {
			q, err := permutation.NewQuery(v, pair[0], pair[1])
			if err != nil {
				continue
			}
			if asked.Contains(q) {
				continue
			}
			value := tbl.Get(v, pair[0], pair[1])
			switch {
			case value > bestValue:
				bestValue = value
				best = []candidate{{q, value}}
			case value == bestValue:
				best = append(best, candidate{q, value})
			}
		}
	}

	if len(best) == 0 {
		return permutation.Query{}, 0, ErrExhausted
	}
	if rng == nil {
		return best[0].q, best[0].value, nil
	}
	pick := rng.Intn(len(best))
	return best[pick].q, best[pick].value, nil
}

// entropy returns the base-2 Shannon entropy of a probability vector,
// treating 0*log2(0) as 0.
func entropy(p []float64) float64 {
	var h float64
	for _, pi := range p {
		if pi <= 0 {
			continue
		}
		h -= pi * math.Log2(pi)
	}
	return h
}

// round rounds x to the given number of decimal places.
func round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

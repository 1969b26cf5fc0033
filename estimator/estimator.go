package estimator

import (
	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/borda"
	"github.com/inrae/bordaquery/internal/rng"
	"github.com/inrae/bordaquery/oracle"
	"github.com/inrae/bordaquery/permutation"
)

// WinProba estimates each candidate's probability of being the Borda
// winner by drawing cfg.Gamma independent full-ranking samples — one
// ranking per voter, drawn from that voter's belief row — scoring each
// draw with borda.Score, and counting how often each candidate wins.
//
// Sampling is split across runtime.GOMAXPROCS(0) workers, each with its
// own deterministic substream derived from cfg.Seed via internal/rng.
// Workers accumulate local counts with no shared mutable state; counts
// are combined only after every worker has finished, so the result does
// not depend on scheduling order.
func WinProba(cfg MCConfig, idx *permutation.Index, b *belief.Store) ([]float64, error) {
	if cfg.Gamma <= 0 {
		return nil, ErrZeroGamma
	}
	rows, m, err := beliefRows(idx, b)
	if err != nil {
		return nil, err
	}
	perms := idx.All()

	counts, err := runParallel(cfg.Seed, cfg.Gamma, func(workerRNG workerSource, samples int) []float64 {
		local := make([]float64, m)
		for s := 0; s < samples; s++ {
			ratings := drawRatings(rows, perms, workerRNG)
			scores, err := borda.Score(ratings)
			if err != nil {
				continue
			}
			local[argmax(scores)]++
		}
		return local
	})
	if err != nil {
		return nil, err
	}

	total := make([]float64, m)
	for _, c := range counts {
		for i, v := range c {
			total[i] += v
		}
	}
	for i := range total {
		total[i] /= float64(cfg.Gamma)
	}
	return total, nil
}

// ExpectedLoss estimates the expected gap between the true winning
// candidate's eventual Borda score and the current favorite's score
// (the candidate with the highest expected score under b), averaged
// over cfg.numSamples() drawn full-ranking scenarios.
func ExpectedLoss(cfg MCConfig, idx *permutation.Index, b *belief.Store) (float64, error) {
	expected, err := borda.Expected(idx, b)
	if err != nil {
		return 0, err
	}
	favorite := argmax(expected)

	rows, _, err := beliefRows(idx, b)
	if err != nil {
		return 0, err
	}
	perms := idx.All()
	numSamples := cfg.numSamples()

	partials, err := runParallel(cfg.Seed, numSamples, func(workerRNG workerSource, samples int) []float64 {
		var localSum float64
		for s := 0; s < samples; s++ {
			ratings := drawRatings(rows, perms, workerRNG)
			scores, err := borda.Score(ratings)
			if err != nil {
				continue
			}
			localSum += scores[argmax(scores)] - scores[favorite]
		}
		return []float64{localSum}
	})
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range partials {
		sum += p[0]
	}
	return sum / float64(numSamples), nil
}

// beliefRows materializes every voter's belief row once up front so
// sampling workers only ever read shared, immutable slices.
func beliefRows(idx *permutation.Index, b *belief.Store) ([][]float64, int, error) {
	if idx == nil || b == nil {
		return nil, 0, ErrShapeMismatch
	}
	if bi := b.Index(); bi != nil && bi.M() != idx.M() {
		return nil, 0, ErrShapeMismatch
	}
	n := b.NumVoters()
	rows := make([][]float64, n)
	for v := 0; v < n; v++ {
		row, err := b.Row(v)
		if err != nil {
			return nil, 0, err
		}
		rows[v] = row
	}
	return rows, idx.M(), nil
}

// drawRatings draws one full ranking per voter from rows, independently,
// and assembles them into a rating matrix shaped (n, m).
func drawRatings(rows [][]float64, perms []permutation.Ranking, r workerSource) oracle.Ratings {
	ratings := make(oracle.Ratings, len(rows))
	for v, row := range rows {
		p := rng.Choice(r, row)
		ratings[v] = perms[p]
	}
	return ratings
}

// argmax returns the index of the largest value in s, breaking ties by
// lowest index.
func argmax(s []float64) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}

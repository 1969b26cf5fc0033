package borda

import (
	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/oracle"
	"github.com/inrae/bordaquery/permutation"
)

// Score computes the concrete Borda score of every candidate from a
// fully-specified rating matrix. Candidate c earns (m-1-pos) points from
// each voter whose ranking places c at position pos; Score sums these
// across all voters.
func Score(ratings oracle.Ratings) ([]float64, error) {
	n := ratings.NumVoters()
	if n == 0 {
		return nil, ErrEmptyRatings
	}
	m := ratings.NumCandidates()
	scores := make([]float64, m)
	for _, row := range ratings {
		if len(row) != m {
			return nil, ErrVoterShapeMismatch
		}
		for pos, cand := range row {
			scores[cand] += float64(m - 1 - pos)
		}
	}
	return scores, nil
}

// Expected computes the expected Borda score of every candidate under a
// belief: the score a candidate would earn in expectation if the true
// ranking of every voter were drawn independently from that voter's row
// of b.
//
// Rather than summing over (voter, permutation) pairs directly, Expected
// first contracts each permutation's total mass across voters, then
// walks the permutation table once. This turns an O(n·m!·m) computation
// into O(n·m! + m!·m), which matters once belief rows are updated many
// times during a run.
func Expected(idx *permutation.Index, b *belief.Store) ([]float64, error) {
	if idx == nil || b == nil {
		return nil, ErrTooFewCandidates
	}
	m := idx.M()
	fact := idx.Factorial()

	totalMass := make([]float64, fact)
	for v := 0; v < b.NumVoters(); v++ {
		row, err := b.Row(v)
		if err != nil {
			return nil, err
		}
		for p, mass := range row {
			totalMass[p] += mass
		}
	}

	perms := idx.All()
	scores := make([]float64, m)
	for p, perm := range perms {
		mass := totalMass[p]
		if mass == 0 {
			continue
		}
		for pos, cand := range perm {
			scores[cand] += float64(m-1-pos) * mass
		}
	}
	return scores, nil
}

// ScoreWithPenalty computes Borda scores from a rating matrix where a
// voter may omit candidates entirely: a present candidate at position j
// (out of numCandidates) earns numCandidates-1-j points as usual, and any
// candidate absent from that voter's row is charged penalty points
// instead of the zero the omission would otherwise imply.
//
// penalty is a magnitude subtracted from the missing candidate's score,
// not a raw point value added; callers that want the original's -2
// treatment of missing candidates pass penalty=2.
func ScoreWithPenalty(ratings oracle.PartialRatings, numCandidates int, penalty float64) ([]float64, error) {
	if numCandidates < 1 {
		return nil, ErrTooFewCandidates
	}
	scores := make([]float64, numCandidates)
	maxPoints := numCandidates - 1

	for _, row := range ratings {
		present := make([]bool, numCandidates)
		for pos, cand := range row {
			if cand < 0 || cand >= numCandidates {
				continue
			}
			present[cand] = true
			scores[cand] += float64(maxPoints - pos)
		}
		for cand, seen := range present {
			if !seen {
				scores[cand] -= penalty
			}
		}
	}
	return scores, nil
}

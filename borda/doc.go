// Package borda computes Borda scores from a concrete ranking matrix and
// expected Borda scores from a belief.
//
// The Borda score of a candidate is the sum, over all voters, of
// (m-1 - position_of(candidate in that voter's ranking)): the
// most-preferred candidate in a ranking of m earns m-1 points, the next
// earns m-2, and so on down to 0.
package borda

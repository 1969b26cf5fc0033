// Package permutation enumerates all m! orderings of m candidates and
// exposes stable integer indices used throughout bordaquery.
//
// Contract:
//
//	idx := permutation.NewIndex(m)
//	perms := idx.All()                 // len(perms) == factorial(m), lexicographic order
//	i, _ := idx.IndexOf(perms[k])      // i == k for any k
//	left := idx.IndicesWherePreferred(a, b)  // a appears before b
//	right := idx.IndicesWherePreferred(b, a) // b appears before a
//	// left and right partition [0, m!) into two disjoint halves of size m!/2.
//
// Iteration order is lexicographic over candidate sequences and is part of
// the public contract: tests depend on it. The index is built once, up
// front, and retained read-only for the lifetime of a run.
//
// m is expected to stay small (m <= 8); NewIndex does not guard against
// larger m beyond returning an error for m < 0, since factorial growth
// itself is the practical limit.
package permutation

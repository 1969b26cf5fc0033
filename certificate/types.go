package certificate

import "github.com/inrae/bordaquery/permutation"

// Tracker holds the provable lower bound (PMin) and upper bound (PMax)
// on each candidate's eventual Borda score, given the answers observed
// so far.
type Tracker struct {
	PMin []float64
	PMax []float64
}

// AskedSet records which canonical (voter, a, b) queries have already
// been asked, so heuristics never re-select one and the controller never
// double-counts it.
type AskedSet struct {
	seen map[permutation.Query]struct{}
}

// NewAskedSet returns an empty AskedSet.
func NewAskedSet() *AskedSet {
	return &AskedSet{seen: make(map[permutation.Query]struct{})}
}

// Contains reports whether q has already been recorded.
func (s *AskedSet) Contains(q permutation.Query) bool {
	_, ok := s.seen[q]
	return ok
}

// Add records q. Adding the same query twice is a no-op.
func (s *AskedSet) Add(q permutation.Query) {
	s.seen[q] = struct{}{}
}

// Len returns the number of distinct queries recorded.
func (s *AskedSet) Len() int {
	return len(s.seen)
}

package permutation

// Ranking is an ordered sequence of m distinct candidate identifiers.
// Position 0 is the most-preferred candidate.
type Ranking []int

// Query is a canonical pairwise-preference query: voter Voter is asked
// whether they prefer candidate A to candidate B. Canonical form requires
// A < B; use NewQuery to build one safely.
type Query struct {
	Voter int
	A     int
	B     int
}

// NewQuery returns the canonical form of the query (voter, a, b) with
// A < B. Returns ErrOutOfRange if a == b (not a valid pairwise query).
func NewQuery(voter, a, b int) (Query, error) {
	if a == b {
		return Query{}, ErrOutOfRange
	}
	if a > b {
		a, b = b, a
	}
	return Query{Voter: voter, A: a, B: b}, nil
}

// Index is a precomputed enumeration of all m! permutations of [0, m).
// The permutation list is built once by NewIndex and never mutated
// afterward; IndicesWherePreferred results are computed on first use and
// cached in the Index.
type Index struct {
	m     int
	perms []Ranking
	// preferred caches IndicesWherePreferred results, keyed by (a,b) with
	// a != b (both orders cached independently, each computed once).
	preferred map[[2]int][]int
}

// M returns the number of candidates this index was built for.
func (idx *Index) M() int { return idx.m }

// Factorial returns m! (the number of permutations in this index).
func (idx *Index) Factorial() int { return len(idx.perms) }

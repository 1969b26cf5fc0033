package permutation

// NewIndex builds the complete, read-only enumeration of all m!
// permutations of [0, m) in lexicographic order.
//
// Complexity: O(m! * m^2) time and O(m! * m) space — acceptable for m <= 8;
// callers must not request larger m in production use.
func NewIndex(m int) (*Index, error) {
	if m < 0 {
		return nil, ErrNegativeSize
	}

	fact := factorial(m)
	perms := make([]Ranking, fact)
	for i := 0; i < fact; i++ {
		perms[i] = lehmerDecode(i, m)
	}

	idx := &Index{
		m:         m,
		perms:     perms,
		preferred: make(map[[2]int][]int),
	}
	return idx, nil
}

// All returns the complete, lexicographically ordered list of
// permutations. The returned slice must not be mutated by callers — it is
// the index's own backing storage.
func (idx *Index) All() []Ranking {
	return idx.perms
}

// IndexOf returns the integer index of p in the enumeration, satisfying
// idx.All()[idx.IndexOf(p)] == p for any valid permutation p.
func (idx *Index) IndexOf(p Ranking) (int, error) {
	if len(p) != idx.m {
		return 0, ErrWrongLength
	}
	seen := make([]bool, idx.m)
	for _, c := range p {
		if c < 0 || c >= idx.m || seen[c] {
			return 0, ErrNotFound
		}
		seen[c] = true
	}
	return lehmerEncode(p), nil
}

// IndicesWherePreferred returns the sorted list of permutation indices in
// which candidate a appears before candidate b. The result is cached: the
// first call for a given (a, b) computes it; later calls return the cached
// slice.
//
// For any ordered pair (a, b) with a != b, IndicesWherePreferred(a, b) and
// IndicesWherePreferred(b, a) partition [0, m!) into two disjoint halves of
// size m!/2 each.
func (idx *Index) IndicesWherePreferred(a, b int) ([]int, error) {
	if a < 0 || a >= idx.m || b < 0 || b >= idx.m || a == b {
		return nil, ErrOutOfRange
	}
	key := [2]int{a, b}
	if cached, ok := idx.preferred[key]; ok {
		return cached, nil
	}

	result := make([]int, 0, len(idx.perms)/2)
	for i, p := range idx.perms {
		if positionOf(p, a) < positionOf(p, b) {
			result = append(result, i)
		}
	}
	idx.preferred[key] = result
	return result, nil
}

// positionOf returns the position of candidate c within ranking p, or -1
// if not present (callers only ever pass valid candidates from a
// well-formed Index, so -1 never actually surfaces in practice).
func positionOf(p Ranking, c int) int {
	for pos, cand := range p {
		if cand == c {
			return pos
		}
	}
	return -1
}

// factorial returns n! for n >= 0.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// lehmerDecode returns the i-th permutation of [0, m) in lexicographic
// order, via the factorial number system (Lehmer code).
//
// Complexity: O(m^2) (the remove-from-slice step); fine for small m.
func lehmerDecode(i, m int) Ranking {
	available := make([]int, m)
	for c := range available {
		available[c] = c
	}

	perm := make(Ranking, m)
	remaining := i
	for pos := 0; pos < m; pos++ {
		f := factorial(m - 1 - pos)
		sel := remaining / f
		remaining -= sel * f
		perm[pos] = available[sel]
		available = append(available[:sel], available[sel+1:]...)
	}
	return perm
}

// lehmerEncode returns the lexicographic index of permutation p over
// [0, len(p)), the inverse of lehmerDecode. Assumes p is a valid
// permutation of [0, len(p)) (callers must validate first).
//
// Complexity: O(m^2).
func lehmerEncode(p Ranking) int {
	m := len(p)
	available := make([]int, m)
	for c := range available {
		available[c] = c
	}

	index := 0
	for pos := 0; pos < m; pos++ {
		sel := 0
		for sel < len(available) && available[sel] != p[pos] {
			sel++
		}
		index += sel * factorial(m-1-pos)
		available = append(available[:sel], available[sel+1:]...)
	}
	return index
}

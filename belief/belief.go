package belief

import "github.com/inrae/bordaquery/permutation"

// NewUniform returns a Store with every voter's row set to the uniform
// distribution over all m! permutations.
func NewUniform(idx *permutation.Index, numVoters int) (*Store, error) {
	if numVoters < 0 {
		return nil, ErrVoterOutOfRange
	}
	fact := idx.Factorial()
	uniform := make([]float64, fact)
	if fact > 0 {
		p := 1.0 / float64(fact)
		for i := range uniform {
			uniform[i] = p
		}
	}

	rows := make([][]float64, numVoters)
	for v := range rows {
		rows[v] = append([]float64(nil), uniform...)
	}
	return &Store{idx: idx, rows: rows}, nil
}

// NewFromTraining returns a Store initialized by counting how often each
// permutation appears in the training rankings, applying Laplace (+1)
// smoothing, renormalizing, and broadcasting the resulting distribution
// to every voter row.
//
// Every training ranking must have length idx.M() and be a valid
// permutation of [0, idx.M()); otherwise ErrShapeMismatch is returned
// and no Store is built.
func NewFromTraining(idx *permutation.Index, training []permutation.Ranking, numVoters int) (*Store, error) {
	if numVoters < 0 {
		return nil, ErrVoterOutOfRange
	}
	fact := idx.Factorial()
	counts := make([]float64, fact)
	for _, row := range training {
		i, err := idx.IndexOf(row)
		if err != nil {
			return nil, ErrShapeMismatch
		}
		counts[i]++
	}

	// Laplace smoothing: add 1 to every permutation's count, then
	// renormalize.
	var total float64
	for i := range counts {
		counts[i]++
		total += counts[i]
	}
	for i := range counts {
		counts[i] /= total
	}

	rows := make([][]float64, numVoters)
	for v := range rows {
		rows[v] = append([]float64(nil), counts...)
	}
	return &Store{idx: idx, rows: rows}, nil
}

// Clone returns a deep copy of the store, so callers (e.g. heuristics
// evaluating hypothetical answers) can condition on a speculative event
// without mutating the shared belief.
func (s *Store) Clone() *Store {
	rows := make([][]float64, len(s.rows))
	for v, row := range s.rows {
		rows[v] = append([]float64(nil), row...)
	}
	return &Store{idx: s.idx, rows: rows}
}

// QueryProbability returns P(voter v prefers a to b) under the current
// belief: Σ_{i in indices where a before b} B[v,i].
func (s *Store) QueryProbability(v, a, b int) (float64, error) {
	if v < 0 || v >= len(s.rows) {
		return 0, ErrVoterOutOfRange
	}
	indices, err := s.idx.IndicesWherePreferred(a, b)
	if err != nil {
		return 0, ErrCandidateOutOfRange
	}

	row := s.rows[v]
	var sum float64
	for _, i := range indices {
		sum += row[i]
	}
	return sum, nil
}

// Condition performs posterior conditioning of voter v's row on the event
// "voter v prefers a to b". If the event has zero prior
// mass, the row is left unchanged and ErrInconsistentEvidence is returned
// alongside a ConditionResult with Consistent=false — callers (the
// Transitivity Engine) must still apply certificate updates, since the
// oracle's answer itself remains sound evidence.
//
// Conditioning is idempotent: conditioning twice on the same event
// produces the same row as conditioning once.
func (s *Store) Condition(v, a, b int) (ConditionResult, error) {
	if v < 0 || v >= len(s.rows) {
		return ConditionResult{}, ErrVoterOutOfRange
	}
	indices, err := s.idx.IndicesWherePreferred(a, b)
	if err != nil {
		return ConditionResult{}, ErrCandidateOutOfRange
	}

	row := s.rows[v]
	var mass float64
	for _, i := range indices {
		mass += row[i]
	}
	if mass == 0 {
		return ConditionResult{Consistent: false, MassBefore: 0}, ErrInconsistentEvidence
	}

	inEvent := make([]bool, len(row))
	for _, i := range indices {
		inEvent[i] = true
	}
	for i := range row {
		if inEvent[i] {
			row[i] /= mass
		} else {
			row[i] = 0
		}
	}
	return ConditionResult{Consistent: true, MassBefore: mass}, nil
}

// Renormalize checks voter v's row sum against rowTolerance and, if it
// has drifted, rescales the row back to sum to 1. Returns true if a
// renormalization was performed.
func (s *Store) Renormalize(v int) (bool, error) {
	if v < 0 || v >= len(s.rows) {
		return false, ErrVoterOutOfRange
	}
	row := s.rows[v]
	var sum float64
	for _, p := range row {
		sum += p
	}
	if sum == 0 {
		return false, nil
	}
	if diff := sum - 1; diff > -rowTolerance && diff < rowTolerance {
		return false, nil
	}
	for i := range row {
		row[i] /= sum
	}
	return true, nil
}

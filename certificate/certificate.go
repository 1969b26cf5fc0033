package certificate

// New returns a Tracker for numCandidates candidates and numVoters
// voters, with PMin all zero and PMax all (numCandidates-1)*numVoters —
// the maximum Borda score any candidate could still achieve if every
// remaining answer favored it.
func New(numCandidates, numVoters int) (*Tracker, error) {
	if numCandidates < 1 {
		return nil, ErrTooFewCandidates
	}
	ceiling := float64((numCandidates - 1) * numVoters)
	pMin := make([]float64, numCandidates)
	pMax := make([]float64, numCandidates)
	for i := range pMax {
		pMax[i] = ceiling
	}
	return &Tracker{PMin: pMin, PMax: pMax}, nil
}

// Bump records that best was just observed preferred to worst: best's
// lower bound rises by one, worst's upper bound falls by one.
func (t *Tracker) Bump(best, worst int) error {
	if best < 0 || best >= len(t.PMin) || worst < 0 || worst >= len(t.PMax) {
		return ErrCandidateOutOfRange
	}
	t.PMin[best]++
	t.PMax[worst]--
	return nil
}

// NecessaryWinner returns the lowest-index candidate whose PMin is at
// least as large as every other candidate's PMax, and true. If no
// candidate yet satisfies this, it returns (0, false).
func (t *Tracker) NecessaryWinner() (int, bool) {
	for j := range t.PMin {
		dominant := true
		for k := range t.PMax {
			if k == j {
				continue
			}
			if t.PMin[j] < t.PMax[k] {
				dominant = false
				break
			}
		}
		if dominant {
			return j, true
		}
	}
	return 0, false
}

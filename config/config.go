package config

// knownHeuristics are the strategy names heuristic.New recognizes.
// Duplicated here (rather than imported) so config stays free of any
// dependency on the heuristic package and can be validated before the
// engine is constructed.
var knownHeuristics = map[string]struct{}{
	"IGB":      {},
	"ESB":      {},
	"EVOI":     {},
	"EVOI+IGB": {},
}

// Validate checks c for internal consistency, returning the first
// violated invariant as a sentinel error.
func Validate(c Config) error {
	if c.NumCandidates < 2 {
		return ErrTooFewCandidates
	}
	if c.NumVoters < 1 {
		return ErrTooFewVoters
	}
	if c.Gamma <= 0 {
		return ErrNonPositiveGamma
	}
	if _, ok := knownHeuristics[c.Heuristic]; !ok {
		return ErrUnknownHeuristic
	}
	if c.Dataset != FixedSushi && c.Dataset != RandomSushi && c.Dataset != Random {
		return ErrInvalidDataset
	}
	if c.Epsilon < 0 || c.Delta < 0 {
		return ErrNegativeTolerance
	}
	return nil
}

package belief

import "errors"

// Sentinel errors for the belief package.
var (
	// ErrVoterOutOfRange indicates a voter index outside [0, numVoters).
	ErrVoterOutOfRange = errors.New("belief: voter out of range")

	// ErrCandidateOutOfRange indicates a or b passed to Condition or
	// QueryProbability is outside [0, m) or a == b.
	ErrCandidateOutOfRange = errors.New("belief: candidate out of range")

	// ErrShapeMismatch indicates a training ranking did not match the
	// candidate count m the index was built for.
	ErrShapeMismatch = errors.New("belief: training ranking shape mismatch")

	// ErrInconsistentEvidence indicates posterior conditioning encountered
	// zero total probability mass on the requested event: either a
	// contradictory answer history (e.g. conditioning on a>b after
	// already conditioning on b>a) or numerical underflow. The belief row
	// is left unchanged; callers must still apply certificate updates,
	// since the oracle's answer itself is still sound evidence.
	ErrInconsistentEvidence = errors.New("belief: inconsistent evidence, zero probability mass on event")
)

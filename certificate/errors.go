package certificate

import "errors"

// ErrTooFewCandidates indicates New was called with numCandidates < 1.
var ErrTooFewCandidates = errors.New("certificate: fewer than one candidate")

// ErrCandidateOutOfRange indicates Bump was called with an index outside
// [0, numCandidates).
var ErrCandidateOutOfRange = errors.New("certificate: candidate index out of range")

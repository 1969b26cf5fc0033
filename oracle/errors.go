package oracle

import "errors"

// Sentinel errors for the oracle package.
var (
	// ErrOutOfRange indicates v, a, or b is outside its valid bounds.
	// Fatal: the caller passed a malformed query, not a recoverable
	// belief inconsistency.
	ErrOutOfRange = errors.New("oracle: voter or candidate out of range")

	// ErrMalformedRanking indicates a voter's row is not a valid
	// permutation of [0, m) (missing or duplicate candidate).
	ErrMalformedRanking = errors.New("oracle: malformed ranking row")
)

package permutation

import "errors"

// Sentinel errors for the permutation package. Prefixed "permutation: "
// for consistent grepping across logs.
var (
	// ErrNegativeSize indicates NewIndex was called with m < 0.
	ErrNegativeSize = errors.New("permutation: negative candidate count")

	// ErrWrongLength indicates a permutation passed to IndexOf does not
	// have length m.
	ErrWrongLength = errors.New("permutation: wrong permutation length")

	// ErrNotFound indicates a permutation passed to IndexOf is not a valid
	// ordering of [0, m) (e.g. contains a duplicate or out-of-range value).
	ErrNotFound = errors.New("permutation: permutation not found in index")

	// ErrOutOfRange indicates a and b passed to IndicesWherePreferred are
	// not both valid, distinct candidates in [0, m).
	ErrOutOfRange = errors.New("permutation: candidate out of range")
)

package dataset

import "errors"

var (
	// ErrTooFewRows indicates the sushi order file has fewer usable rows
	// than the requested block sizes require.
	ErrTooFewRows = errors.New("dataset: fewer rows available than requested")

	// ErrMalformedRow indicates a row could not be parsed into the
	// expected number of integer columns.
	ErrMalformedRow = errors.New("dataset: malformed row in sushi order file")
)

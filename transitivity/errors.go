package transitivity

import "errors"

// ErrVoterOutOfRange indicates Apply was called with a voter index
// outside [0, numVoters).
var ErrVoterOutOfRange = errors.New("transitivity: voter index out of range")

// ErrCandidateOutOfRange indicates Apply was called with a candidate
// index outside [0, numCandidates).
var ErrCandidateOutOfRange = errors.New("transitivity: candidate index out of range")

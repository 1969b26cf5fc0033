package borda

import "errors"

// Sentinel errors for the borda package.
var (
	// ErrEmptyRatings indicates Score was called with zero voters.
	ErrEmptyRatings = errors.New("borda: empty rating matrix")

	// ErrVoterShapeMismatch indicates Score was called with ragged rows
	// (Score requires full rankings; use ScoreWithPenalty for partial ones).
	ErrVoterShapeMismatch = errors.New("borda: ragged rating matrix")

	// ErrTooFewCandidates indicates numCandidates < 1 was passed to
	// ScoreWithPenalty, or Expected was called with a nil index or belief.
	ErrTooFewCandidates = errors.New("borda: fewer than one candidate")
)

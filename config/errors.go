package config

import "errors"

// Sentinel errors returned by Validate.
var (
	ErrUnknownHeuristic  = errors.New("config: unknown heuristic name")
	ErrInvalidDataset    = errors.New("config: unknown dataset selector")
	ErrTooFewCandidates  = errors.New("config: fewer than two candidates")
	ErrTooFewVoters      = errors.New("config: fewer than one voter")
	ErrNonPositiveGamma  = errors.New("config: gamma must be positive")
	ErrNegativeTolerance = errors.New("config: epsilon and delta must be non-negative")
)

package heuristic

import "errors"

// ErrUnknownHeuristic indicates New was called with a name that does
// not match any registered strategy.
var ErrUnknownHeuristic = errors.New("heuristic: unknown strategy name")

// ErrExhausted indicates every (voter, candidate pair) has already been
// asked; SelectQuery has nothing left to choose from.
var ErrExhausted = errors.New("heuristic: no unasked queries remain")

package controller

import "errors"

// ErrQueryBudgetExhausted indicates the controller asked more than
// n*m*(m-1)/2 queries without terminating. Under correct operation this
// never fires — the certificate necessarily resolves once every pair has
// been asked — so tripping it indicates a misbehaving heuristic rather
// than a normal run outcome.
var ErrQueryBudgetExhausted = errors.New("controller: query budget exhausted without a winner")

// ErrDuplicateQuery indicates a Strategy repeatedly selected a query
// already present in the asked-set. The built-in strategies filter
// asked queries themselves and never trigger this, but Run still
// guards against a misbehaving or custom Strategy: each duplicate is
// logged and re-selected, up to the query budget, before this sentinel
// is returned.
var ErrDuplicateQuery = errors.New("controller: heuristic repeatedly selected an already-asked query")

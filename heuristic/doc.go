// Package heuristic selects the next pairwise query to ask, given the
// current belief over voter permutations and the set of queries already
// asked.
//
// Four strategies are provided: IGB (information-gain), ESB (expected
// score), EVOI (expected value of information), and EVOI+IGB (EVOI,
// falling back to IGB whenever every candidate query has zero value).
// Each strategy scores every (voter, unordered candidate pair) not yet
// in the asked-set by combining the value of both possible answers,
// weighted by their current probability, and returns the query
// achieving the maximum — breaking ties uniformly at random among
// queries tied for the maximum.
package heuristic

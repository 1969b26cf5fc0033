// Package certificate tracks the provable bounds on every candidate's
// final Borda score as pairwise answers accumulate, and the set of
// queries already asked.
//
// Every answered query raises the winning candidate's PMin and lowers
// the losing candidate's PMax. A candidate is a necessary winner once
// its PMin is at least as large as every other candidate's PMax: no
// sequence of remaining answers can let another candidate catch up.
package certificate

// Package oracle provides the deterministic ground-truth preference
// lookup that stands in for a real voter: given a rating matrix R of
// shape (n, m), Prefers(v, a, b) reports whether voter v ranks candidate
// a above candidate b, in O(m).
package oracle

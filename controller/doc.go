// Package controller runs the adaptive query-selection loop: pick the
// next query with a heuristic.Strategy, ask the oracle, apply
// transitivity closure, update the certificate, and repeat until a
// necessary winner is certified or (outside Israeli mode) the expected
// loss drops below a termination threshold.
//
// A Controller logs each query and the run's start/finish via an
// injected *zap.Logger (SetLogger); a Controller built by New logs
// nothing until SetLogger is called.
package controller

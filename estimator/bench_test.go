// Package estimator_test — benchmarks for the Monte-Carlo estimators.
//
// Policy: m=6, n=10 is a representative mid-run scale; results are not
// meaningful beyond relative comparisons across changes.
package estimator_test

import (
	"testing"

	"github.com/inrae/bordaquery/belief"
	"github.com/inrae/bordaquery/estimator"
	"github.com/inrae/bordaquery/permutation"
)

func BenchmarkWinProba(b *testing.B) {
	idx, err := permutation.NewIndex(6)
	if err != nil {
		b.Fatalf("new index: %v", err)
	}
	bel, err := belief.NewUniform(idx, 10)
	if err != nil {
		b.Fatalf("new uniform: %v", err)
	}
	cfg := estimator.MCConfig{Gamma: 500, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimator.WinProba(cfg, idx, bel); err != nil {
			b.Fatalf("win proba: %v", err)
		}
	}
}

func BenchmarkExpectedLoss(b *testing.B) {
	idx, err := permutation.NewIndex(6)
	if err != nil {
		b.Fatalf("new index: %v", err)
	}
	bel, err := belief.NewUniform(idx, 10)
	if err != nil {
		b.Fatalf("new uniform: %v", err)
	}
	cfg := estimator.MCConfig{NumSamples: 500, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimator.ExpectedLoss(cfg, idx, bel); err != nil {
			b.Fatalf("expected loss: %v", err)
		}
	}
}

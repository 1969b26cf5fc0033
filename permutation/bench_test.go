// Package permutation_test — benchmarks for index construction and lookup.
//
// Policy: m is fixed to 6 (the sushi dataset's kept-item scale); results
// are not meaningful beyond relative comparisons across changes.
package permutation_test

import (
	"testing"

	"github.com/inrae/bordaquery/permutation"
)

func BenchmarkNewIndex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := permutation.NewIndex(6); err != nil {
			b.Fatalf("new index: %v", err)
		}
	}
}

func BenchmarkIndicesWherePreferred_Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		idx, err := permutation.NewIndex(6)
		if err != nil {
			b.Fatalf("new index: %v", err)
		}
		if _, err := idx.IndicesWherePreferred(0, 1); err != nil {
			b.Fatalf("indices where preferred: %v", err)
		}
	}
}

func BenchmarkIndicesWherePreferred_Cached(b *testing.B) {
	idx, err := permutation.NewIndex(6)
	if err != nil {
		b.Fatalf("new index: %v", err)
	}
	if _, err := idx.IndicesWherePreferred(0, 1); err != nil {
		b.Fatalf("warm cache: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.IndicesWherePreferred(0, 1); err != nil {
			b.Fatalf("indices where preferred: %v", err)
		}
	}
}

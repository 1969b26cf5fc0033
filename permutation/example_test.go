package permutation_test

import (
	"fmt"
	"log"

	"github.com/inrae/bordaquery/permutation"
)

// ExampleIndex demonstrates enumerating all permutations of 3 candidates
// and locating which ones prefer candidate 0 over candidate 2.
func ExampleIndex() {
	idx, err := permutation.NewIndex(3)
	if err != nil {
		log.Fatalf("new index: %v", err)
	}

	fmt.Println("total permutations:", idx.Factorial())

	prefer0over2, err := idx.IndicesWherePreferred(0, 2)
	if err != nil {
		log.Fatalf("indices where preferred: %v", err)
	}
	fmt.Println("rankings preferring 0 over 2:", len(prefer0over2))

	// Output:
	// total permutations: 6
	// rankings preferring 0 over 2: 3
}

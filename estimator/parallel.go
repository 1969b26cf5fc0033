package estimator

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/inrae/bordaquery/internal/rng"
)

// workerSource is the per-worker RNG handed to sampling closures. A bare
// alias keeps estimator.go from importing math/rand directly.
type workerSource = *rand.Rand

// runParallel splits totalSamples across runtime.GOMAXPROCS(0) workers,
// hands each one an independent deterministic substream split from seed,
// and runs work once per worker with that worker's share of the sample
// count. Each worker's returned slice is collected into the result at
// its own index; no shared state is written during the parallel phase.
func runParallel(seed int64, totalSamples int, work func(workerRNG workerSource, samples int) []float64) ([][]float64, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > totalSamples {
		workers = totalSamples
	}
	if workers < 1 {
		workers = 1
	}

	base := rng.New(seed)
	results := make([][]float64, workers)
	perWorker := totalSamples / workers
	remainder := totalSamples % workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		workerRNG := rng.Split(base, uint64(w))

		wg.Add(1)
		go func(w, samples int, workerRNG workerSource) {
			defer wg.Done()
			results[w] = work(workerRNG, samples)
		}(w, samples, workerRNG)
	}
	wg.Wait()
	return results, nil
}

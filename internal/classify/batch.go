package classify

import (
	"sync"

	"border-blur/internal/geometry"
	"border-blur/internal/region"
)

// BatchResult carries the per-point results of a batch classification in the
// same order as the input points, plus aggregate counts.
type BatchResult struct {
	Results      []Result               `json:"results"`
	ByBorough    map[region.Borough]int `json:"by_borough"`
	ByConfidence map[Confidence]int     `json:"by_confidence"`
}

// ClassifyBatch classifies every point independently against the store.
// Classification is pure and the store is read-only, so the points are
// fanned out across workers; the output slice preserves input order
// regardless of which worker handled which point.
//
// An empty store does not fail the batch: every point comes back
// Unclassified/None.
func ClassifyBatch(points []geometry.Coordinate, store *region.Store, workers int) BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(points))

	var wg sync.WaitGroup
	idx := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				// The only error Classify returns is the empty-store
				// one, and the batch contract degrades that to
				// Unclassified/None per point.
				results[i], _ = Classify(points[i], store, true)
			}
		}()
	}
	for i := range points {
		idx <- i
	}
	close(idx)
	wg.Wait()

	out := BatchResult{
		Results:      results,
		ByBorough:    make(map[region.Borough]int),
		ByConfidence: make(map[Confidence]int),
	}
	for _, r := range results {
		out.ByBorough[r.Borough]++
		out.ByConfidence[r.Confidence]++
	}
	return out
}

// Package geoquery is a toolkit of stateless geometry queries over mgl64 vectors.
//
// The queries live in sub-packages, leaves first:
//   - vector: dot, cross, safe normalization, tolerance comparisons
//   - angle: unsigned and signed angles, angle folding
//   - projection: projection and rejection of one vector on another
//   - closest: closest points on lines and segments, segment to segment
//   - plane: point to plane distance and projection, ray and segment intersection
//
// Every query is a pure function of its arguments, so any of them can run
// concurrently. Map fans a batch of independent queries out over goroutines.
package geoquery

import "sync"

const DEFAULT_WORKERS = 1

// Map applies fn to every item using workersCount goroutines and returns the
// results in input order. Each goroutine handles one contiguous chunk.
func Map[T, R any](workersCount int, data []T, fn func(data T) R) []R {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	results := make([]R, len(data))

	task(workersCount, data, func(i int, item T) {
		results[i] = fn(item)
	})

	return results
}

func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, end)
	}
	wg.Wait()
}

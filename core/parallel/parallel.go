// Package parallel splits index ranges across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks divides [0, items) into at most workers contiguous [start, end) ranges
// of near-equal size, in order. workers <= 0 uses runtime.NumCPU().
func Chunks(items, workers int) [][2]int {
	if items <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	// ceiling division
	chunkSize := (items + workers - 1) / workers

	chunks := make([][2]int, 0, workers)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		chunks = append(chunks, [2]int{start, end})
	}
	return chunks
}

// Parallelize runs fn once per chunk of [0, items) on its own goroutine and
// waits for all of them.
func Parallelize(items int, fn func(start, end int)) {
	MapChunks(items, 0, func(start, end int) struct{} {
		fn(start, end)
		return struct{}{}
	})
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items <= threshold, and Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// MapChunks applies fn to every chunk of [0, items) and returns the results in
// chunk order, so a caller reducing them gets the same summation order on every
// run for a given CPU count. Below or at threshold a single chunk is computed inline.
func MapChunks[T any](items, threshold int, fn func(start, end int) T) []T {
	if items <= 0 {
		return nil
	}
	if items <= threshold {
		return []T{fn(0, items)}
	}

	chunks := Chunks(items, 0)
	results := make([]T, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, c := range chunks {
		go func(i, start, end int) {
			defer wg.Done()
			results[i] = fn(start, end)
		}(i, c[0], c[1])
	}
	wg.Wait()

	return results
}

package various

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// KickOffChunkWorkers splits [0, totalItems) into contiguous chunks and calls
// fn for each chunk on its own goroutine. It returns the first error reported
// by any chunk once all of them are done.
func KickOffChunkWorkers(totalItems int, fn func(start, end int) error) error {
	numWorkers := runtime.GOMAXPROCS(0)

	var g errgroup.Group
	g.SetLimit(numWorkers)

	var chunkStart int
	chunkSize := (totalItems / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalItems - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		start, end := chunkStart, chunkStart+curChunk
		g.Go(func() error {
			return fn(start, end)
		})
		chunkStart += curChunk
	}
	return g.Wait()
}

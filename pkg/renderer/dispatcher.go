package renderer

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// chunkBounds returns the half-open pixel range [start, end) owned by worker
// id when total pixels are split across workers. The first total%workers
// workers get one extra pixel.
func chunkBounds(total, workers, id int) (start, end int) {
	per := total / workers
	rem := total % workers
	start = id*per + min(id, rem)
	end = start + per
	if id < rem {
		end++
	}
	return start, end
}

// dispatch runs renderPixel for every pixel exactly once and returns the
// number of view rays that hit geometry. Each worker owns disjoint indices,
// so writes into fb need no locking. Wait is the frame barrier.
func dispatch(f *frame, fb *FrameBuffer, workers int, partition Partition, batch int) (int, int, error) {
	total := len(fb.Pixels)
	workers = max(min(workers, total), 1)
	batch = max(min(batch, total), 1)
	hits := make([]int, workers)

	var g errgroup.Group
	g.SetLimit(workers)

	switch partition {
	case PartitionDynamic:
		var cursor atomic.Int64
		for id := 0; id < workers; id++ {
			id := id
			g.Go(func() error {
				local := 0
				for {
					start := int(cursor.Add(int64(batch))) - batch
					if start >= total {
						break
					}
					end := min(start+batch, total)
					for i := start; i < end; i++ {
						if f.renderPixel(i, fb) {
							local++
						}
					}
				}
				hits[id] = local
				return nil
			})
		}
	default:
		for id := 0; id < workers; id++ {
			id := id
			start, end := chunkBounds(total, workers, id)
			g.Go(func() error {
				local := 0
				for i := start; i < end; i++ {
					if f.renderPixel(i, fb) {
						local++
					}
				}
				hits[id] = local
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return 0, workers, err
	}

	totalHits := 0
	for _, h := range hits {
		totalHits += h
	}
	return totalHits, workers, nil
}

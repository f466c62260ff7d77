package processor

import (
	"context"
	"sync"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// Outcome pairs the result record with the per-building error. Exactly one
// Outcome exists per input building, in input order, so the output is always
// building-count-complete: a malformed footprint or a canceled run yields an
// errored outcome, never a silent omission.
type Outcome struct {
	Result model.VolumeResult
	Err    error
}

// RunPool processes buildings concurrently on a fixed worker pool. Tile data
// is the only shared state and is read-only behind the cache, so buildings
// need no cross-coordination. Outcomes are returned in input order.
func (p *Processor) RunPool(ctx context.Context, buildings []model.Building, workers int) []Outcome {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(buildings) {
		workers = len(buildings)
	}

	out := make([]Outcome, len(buildings))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := p.Process(buildings[i])
				out[i] = Outcome{Result: res, Err: err}
			}
		}()
	}

	canceled := false
feed:
	for i := range buildings {
		if ctx.Err() != nil {
			markCanceled(out, buildings, i, ctx.Err())
			canceled = true
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			markCanceled(out, buildings, i, ctx.Err())
			canceled = true
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		p.logger.Warn("run canceled before all buildings were processed")
	}
	return out
}

// fills errored outcomes for every building not yet handed to a worker
func markCanceled(out []Outcome, buildings []model.Building, from int, err error) {
	for j := from; j < len(buildings); j++ {
		out[j] = Outcome{
			Result: model.VolumeResult{EGID: buildings[j].EGID},
			Err:    err,
		}
	}
}

package sizer

import (
	"context"
	"runtime"
	"sync"

	"github.com/Prathameshp2025/WrapExplorer/internal/logging"
	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// Result is one computed folder size, delivered at most once per
// folder per round.
type Result struct {
	Path string
	Size int64
}

// Scheduler fans folder-size computations out across a bounded worker
// pool. One Schedule call is one round; cancelling the round's context
// supersedes it and stops publication.
type Scheduler struct {
	workers int
}

// NewScheduler creates a scheduler running up to workers concurrent
// aggregations. Non-positive workers defaults to the host core count.
func NewScheduler(workers int) *Scheduler {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{workers: workers}
}

// Schedule computes the tree size of every folder entry and delivers
// one Result per folder on the returned channel, in completion order.
// The channel is closed when the round finishes or is cancelled; after
// cancellation no further results are sent. The entries themselves are
// never touched here — applying results to the presentation model is
// the consumer's job, on its own goroutine.
func (s *Scheduler) Schedule(ctx context.Context, folders []*model.Entry) <-chan Result {
	paths := make([]string, len(folders))
	for i, f := range folders {
		paths[i] = f.Path
	}

	out := make(chan Result, s.workers)

	go func() {
		defer close(out)

		sem := make(chan struct{}, s.workers)
		var wg sync.WaitGroup

	dispatch:
		for _, path := range paths {
			select {
			case <-ctx.Done():
				break dispatch
			case sem <- struct{}{}:
			}

			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				defer func() { <-sem }()

				if ctx.Err() != nil {
					return
				}

				size := s.compute(ctx, path)
				if ctx.Err() != nil {
					// Superseded mid-traversal: the partial sum is
					// discardable, not publishable.
					return
				}

				select {
				case <-ctx.Done():
				case out <- Result{Path: path, Size: size}:
				}
			}(path)
		}

		wg.Wait()
	}()

	return out
}

// compute wraps the aggregation so that one folder blowing up in an
// unexpected way yields size 0 instead of losing the whole round.
func (s *Scheduler) compute(ctx context.Context, path string) (size int64) {
	defer func() {
		if r := recover(); r != nil {
			logging.Sizer.Printf("size of %s panicked: %v", path, r)
			size = 0
		}
	}()
	return TreeSize(ctx, path)
}

package mcparallel

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Executor runs every task and returns the partials indexed by chunk.
// Any failed chunk fails the whole batch and no partials are returned.
type Executor interface {
	Execute(ctx context.Context, tasks []SampleTask, progress Progress) ([]PartialResult, error)
}

type chunkFunc func(ctx context.Context, t SampleTask) (PartialResult, error)

// GoroutinePool runs chunks on a fixed number of goroutines.
type GoroutinePool struct {
	Workers int
}

func (p *GoroutinePool) Execute(ctx context.Context, tasks []SampleTask, progress Progress) ([]PartialResult, error) {
	return runPool(ctx, p.Workers, tasks, sampleChunk, progress)
}

// runPool starts min(workers, len(tasks)) workers draining a task queue.
// The first error cancels the rest, the barrier is g.Wait.
func runPool(ctx context.Context, workers int, tasks []SampleTask, run chunkFunc, progress Progress) ([]PartialResult, error) {
	if workers <= 0 {
		return nil, invalidf("workers must be > 0, got %d", workers)
	}
	if len(tasks) == 0 {
		return nil, invalidf("no tasks")
	}
	workers = imin(workers, len(tasks))

	queue := make(chan int, len(tasks))
	for i := range tasks {
		queue <- i
	}
	close(queue)

	// each slot is written by exactly one worker
	results := make([]PartialResult, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		wid := w
		g.Go(func() error {
			for i := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				t := tasks[i]
				DebugLog("worker %d: chunk %d, seed %d, samples %d", wid, t.Chunk, t.Seed, t.SampleCount)
				p, err := run(gctx, t)
				if err != nil {
					if errors.Is(err, ErrPoolExhausted) {
						return err
					}
					return &WorkerError{Chunk: t.Chunk, Seed: t.Seed, Err: err}
				}
				results[i] = p
				if progress != nil {
					progress.ChunkDone(p)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

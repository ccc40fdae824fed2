package mcparallel

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

var errForced = errors.New("forced failure")

// sampleChunk runs one task with its own generator seeded from the task.
func sampleChunk(ctx context.Context, t SampleTask) (PartialResult, error) {
	start := time.Now()
	if t.Fail {
		return PartialResult{}, errForced
	}
	if t.SampleCount <= 0 {
		return PartialResult{}, invalidf("chunk %d: sample count must be > 0, got %d", t.Chunk, t.SampleCount)
	}
	if err := t.Domain.validate(); err != nil {
		return PartialResult{}, err
	}
	f, err := LookupFunc(t.Integrand)
	if err != nil {
		return PartialResult{}, err
	}

	rng := rand.New(rand.NewSource(t.Seed))
	xMax, yMax := t.Domain.XMax, t.Domain.YMax
	var hits int64
	for i := 0; i < t.SampleCount; i++ {
		if i&ctxCheckMask == ctxCheckMask {
			if err := ctx.Err(); err != nil {
				return PartialResult{}, err
			}
		}
		x := xMax * rng.Float64()
		y := yMax * rng.Float64()
		if Hit(f, x, y) {
			hits++
		}
	}
	return PartialResult{
		Chunk:   t.Chunk,
		Seed:    t.Seed,
		Hits:    hits,
		Samples: int64(t.SampleCount),
		Elapsed: time.Since(start),
	}, nil
}

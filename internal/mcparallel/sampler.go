package mcparallel

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sampler is the dispatch -> barrier -> aggregate batch.
type Sampler struct {
	cfg  *Config
	exec Executor
}

func NewSampler(cfg *Config) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sampler{cfg: cfg}
	switch cfg.Executor {
	case ExecProcess:
		s.exec = &ProcessPool{
			Workers: cfg.Processes,
			Command: cfg.WorkerCommand[0],
			Args:    cfg.WorkerCommand[1:],
		}
	default:
		s.exec = &GoroutinePool{Workers: cfg.Processes}
	}
	return s, nil
}

// WithExecutor swaps the executor, used to plug in custom pools.
func (s *Sampler) WithExecutor(e Executor) *Sampler {
	s.exec = e
	return s
}

// Sample blocks until every chunk is done. On any chunk failure it returns
// the error and no result.
func (s *Sampler) Sample(ctx context.Context, progress Progress) (*AggregateResult, error) {
	runID := uuid.NewString()
	start := time.Now()
	tasks, err := NewTasks(s.cfg)
	if err != nil {
		return nil, err
	}
	DebugLog("run %s: %d chunks x %d samples on %d workers (%s)", runID, len(tasks), s.cfg.SamplesPerChunk, s.cfg.Processes, s.cfg.Executor)

	partials, err := s.exec.Execute(ctx, tasks, progress)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", runID)
	}

	res, err := Aggregate(partials, s.cfg.Domain)
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", runID)
	}
	if want := s.cfg.TotalSamples(); res.TotalSamples != want {
		return nil, errors.Errorf("run %s: aggregated %d samples, want %d", runID, res.TotalSamples, want)
	}
	res.RunID = runID
	res.Integrand = s.cfg.Integrand
	res.Elapsed = time.Since(start)
	DebugLog("run %s: hits=%d samples=%d estimate=%.9g +/- %.3g, time: %s", runID, res.TotalHits, res.TotalSamples, res.Estimate, res.StdErr, res.Elapsed)
	return res, nil
}

package mcparallel

import "time"

// SampleTask is one chunk of work. It is built before dispatch and never mutated.
type SampleTask struct {
	Chunk       int    `json:"chunk"`
	Seed        int64  `json:"seed"`
	SampleCount int    `json:"sampleCount"`
	Integrand   string `json:"integrand"`
	Domain      Domain `json:"domain"`
	Fail        bool   `json:"fail,omitempty"` // forced failure, for testing the abort path
}

// PartialResult is what a worker hands back for one chunk.
type PartialResult struct {
	Chunk   int           `json:"chunk"`
	Seed    int64         `json:"seed"`
	Hits    int64         `json:"hits"`
	Samples int64         `json:"samples"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// NewTasks builds one task per chunk, chunk i is seeded with seedBase+i.
func NewTasks(cfg *Config) ([]SampleTask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tasks := make([]SampleTask, cfg.Chunks)
	for i := range tasks {
		tasks[i] = SampleTask{
			Chunk:       i,
			Seed:        cfg.SeedBase + int64(i),
			SampleCount: cfg.SamplesPerChunk,
			Integrand:   cfg.Integrand,
			Domain:      cfg.Domain,
			Fail:        cfg.FailChunk != nil && i == *cfg.FailChunk,
		}
	}
	return tasks, nil
}

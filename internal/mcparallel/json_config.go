package mcparallel

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	Processes       int    `json:"processes"`
	Chunks          int    `json:"chunks"`
	SamplesPerChunk int    `json:"samplesPerChunk"`
	Integrand       string `json:"integrand,omitempty"`
	Domain          Domain `json:"domain"`
	SeedBase        int64  `json:"seedBase,omitempty"`
	Executor        string `json:"executor,omitempty"`
	// Worker process command line, the first element is the executable.
	WorkerCommand []string `json:"workerCommand,omitempty"`
	ResultOut     string   `json:"resultOut,omitempty"`
	// FailChunk forces that chunk to fail, nil disables it.
	FailChunk *int `json:"failChunk,omitempty"`
}

// DefaultConfig mirrors the reference run: 4 processes, 10 chunks of 2M points.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills only the zero fields, negative values are left for Validate.
func (c *Config) applyDefaults() {
	if c.Processes == 0 {
		c.Processes = NProcesses
	}
	if c.Chunks == 0 {
		c.Chunks = NChunks
	}
	if c.SamplesPerChunk == 0 {
		c.SamplesPerChunk = SamplesPerChunk
	}
	if c.Integrand == "" {
		c.Integrand = DefaultFunc
	}
	if c.Domain == (Domain{}) {
		c.Domain = DefaultDomain(c.Integrand)
	}
	if c.Executor == "" {
		c.Executor = ExecGoroutine
	}
}

func (c *Config) Validate() error {
	if c.Processes <= 0 {
		return invalidf("processes must be > 0, got %d", c.Processes)
	}
	if c.Chunks <= 0 {
		return invalidf("chunks must be > 0, got %d", c.Chunks)
	}
	if c.SamplesPerChunk <= 0 {
		return invalidf("samplesPerChunk must be > 0, got %d", c.SamplesPerChunk)
	}
	if _, err := LookupFunc(c.Integrand); err != nil {
		return err
	}
	if err := c.Domain.validate(); err != nil {
		return err
	}
	switch c.Executor {
	case ExecGoroutine:
	case ExecProcess:
		if len(c.WorkerCommand) == 0 || c.WorkerCommand[0] == "" {
			return invalidf("executor %q needs a worker command", c.Executor)
		}
	default:
		return invalidf("unknown executor %q", c.Executor)
	}
	if c.FailChunk != nil && (*c.FailChunk < 0 || *c.FailChunk >= c.Chunks) {
		return invalidf("failChunk %d out of range [0:%d)", *c.FailChunk, c.Chunks)
	}
	return nil
}

// TotalSamples is S*C.
func (c *Config) TotalSamples() int64 { return int64(c.SamplesPerChunk) * int64(c.Chunks) }

// LoadConfig reads a JSON config and fills in defaults, an empty path gives the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}
	cfg.applyDefaults()
	DebugLog("Loaded config from %q: processes=%d, chunks=%d, samples=%d, integrand=%s, domain=%+v, executor=%s",
		path, cfg.Processes, cfg.Chunks, cfg.SamplesPerChunk, cfg.Integrand, cfg.Domain, cfg.Executor)
	return &cfg, nil
}

package mcparallel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// ProcessPool runs each chunk in its own OS process, at most Workers at a time.
// The child reads a SampleTask as JSON on stdin and answers with a PartialResult on stdout.
type ProcessPool struct {
	Workers int
	Command string
	Args    []string
	Env     []string // nil means inherit
}

func (p *ProcessPool) Execute(ctx context.Context, tasks []SampleTask, progress Progress) ([]PartialResult, error) {
	if p.Command == "" {
		return nil, invalidf("process executor needs a worker command")
	}
	DebugLogOnce("spawning worker processes: %s %s", p.Command, strings.Join(p.Args, " "))
	return runPool(ctx, p.Workers, tasks, p.runChild, progress)
}

func (p *ProcessPool) runChild(ctx context.Context, t SampleTask) (PartialResult, error) {
	in, err := json.Marshal(t)
	if err != nil {
		return PartialResult{}, err
	}
	cmd := exec.CommandContext(ctx, p.Command, p.Args...)
	if p.Env != nil {
		cmd.Env = p.Env
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(in)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return PartialResult{}, errors.Wrapf(ErrPoolExhausted, "%s: %v", p.Command, err)
	}
	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return PartialResult{}, ctx.Err()
		}
		return PartialResult{}, errors.Wrapf(err, "worker process pid %d: %s", cmd.Process.Pid, strings.TrimSpace(stderr.String()))
	}

	var res PartialResult
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return PartialResult{}, errors.Wrap(err, "decode worker output")
	}
	if res.Chunk != t.Chunk || res.Seed != t.Seed {
		return PartialResult{}, errors.Errorf("worker answered for chunk %d seed %d", res.Chunk, res.Seed)
	}
	return res, nil
}

// ServeWorker is the child side of ProcessPool: one task in, one result out.
func ServeWorker(ctx context.Context, r io.Reader, w io.Writer) error {
	var t SampleTask
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return errors.Wrap(err, "decode task")
	}
	res, err := sampleChunk(ctx, t)
	if err != nil {
		return errors.Wrapf(err, "chunk %d", t.Chunk)
	}
	return json.NewEncoder(w).Encode(res)
}

package mcparallel

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWorkerFailed  = errors.New("worker failed")
	ErrPoolExhausted = errors.New("cannot spawn worker process")
)

// WorkerError reports which chunk brought the run down.
type WorkerError struct {
	Chunk int
	Seed  int64
	Err   error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("chunk %d (seed %d): %v", e.Chunk, e.Seed, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrWorkerFailed) match any chunk failure.
func (e *WorkerError) Is(target error) bool { return target == ErrWorkerFailed }

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

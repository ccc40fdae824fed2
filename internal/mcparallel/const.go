package mcparallel

// Defaults used when the config leaves a field unset.
const (
	NProcesses      = 4
	NChunks         = 10
	SamplesPerChunk = 2_000_000
	XMax            = 2.0 // bound on x
	YMax            = 1.0 // bound on the predicate's comparison axis
	DefaultFunc     = "original"
	ExecGoroutine   = "goroutine"
	ExecProcess     = "process"
	WorkerCmd       = "worker" // subcommand run by worker processes
	Z95             = 1.959963984540054
	StatBins        = 100
	// hot-loop constants
	ctxCheckMask = 1<<16 - 1 // poll cancellation every 65536 draws
)

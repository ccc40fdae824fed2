package mcparallel

import (
	"io"
	"os"
)

var (
	Debug       = false // set to true for verbose debug output
	ProgressBar = false // set to true to draw a terminal progress bar instead of [PROGRESS] lines
	// Out is where run output goes, tests swap it.
	Out io.Writer = os.Stdout
	// Compile time checks to ensure that the executors satisfy the interface
	_ Executor = (*GoroutinePool)(nil)
	_ Executor = (*ProcessPool)(nil)
)

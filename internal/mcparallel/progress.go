package mcparallel

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress is told about every finished chunk, possibly from many goroutines.
type Progress interface {
	ChunkDone(p PartialResult)
	Finish()
}

type consoleProgress struct {
	w     io.Writer
	total int
	done  int
}

func newConsoleProgress(w io.Writer, chunks int) *consoleProgress {
	return &consoleProgress{w: w, total: chunks}
}

func (c *consoleProgress) ChunkDone(p PartialResult) {
	outMu.Lock()
	defer outMu.Unlock()
	c.done++
	fmt.Fprintf(c.w, "time to perform numerical integration over %d entries = %.2f sec (chunk %d, seed %d)\n",
		p.Samples, p.Elapsed.Seconds(), p.Chunk, p.Seed)
	fmt.Fprintf(c.w, "[PROGRESS] %.2f%%\n", float64(c.done)*100/float64(c.total))
}

func (c *consoleProgress) Finish() {}

type barProgress struct {
	bar *pb.ProgressBar
}

func newBarProgress(w io.Writer, chunks int) *barProgress {
	bar := pb.New(chunks)
	bar.SetWriter(w)
	bar.Start()
	return &barProgress{bar: bar}
}

func (b *barProgress) ChunkDone(p PartialResult) {
	b.bar.Increment()
	DebugLog("chunk %d done in %s", p.Chunk, p.Elapsed)
}

func (b *barProgress) Finish() { b.bar.Finish() }

func newProgress(w io.Writer, chunks int) Progress {
	if ProgressBar {
		return newBarProgress(w, chunks)
	}
	return newConsoleProgress(w, chunks)
}

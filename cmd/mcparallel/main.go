package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"golang.org/x/term"

	"github.com/lukaszgryglicki/mcparallel/internal/mcparallel"
)

const usage = `usage: %s [run] [options]
       %s worker
Estimate an integral by parallel Monte Carlo sampling.

Options:
`

func main() {
	mcparallel.Debug = os.Getenv("DEBUG") != ""
	mcparallel.ProgressBar = os.Getenv("PROGRESS_BAR") != "" && term.IsTerminal(int(os.Stdout.Fd()))

	args := os.Args[1:]
	if len(args) > 0 && args[0] == mcparallel.WorkerCmd {
		os.Exit(runWorker())
	}
	if len(args) > 0 && args[0] == "run" {
		args = args[1:]
	}

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg, err := parseRun(args)
	if err == nil {
		err = mcparallel.Run(context.Background(), cfg)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func parseRun(args []string) (*mcparallel.Config, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usage, os.Args[0], os.Args[0])
		fs.PrintDefaults()
	}
	var (
		cfgPath   = fs.String("config", "", "JSON config file")
		processes = fs.Int("processes", 0, "number of workers (0: config or default)")
		chunks    = fs.Int("chunks", 0, "number of chunks (0: config or default)")
		samples   = fs.Int("samples", 0, "samples per chunk (0: config or default)")
		integrand = fs.String("integrand", "", fmt.Sprintf("function to integrate %v", mcparallel.FuncNames()))
		executor  = fs.String("exec", "", "executor: goroutine or process")
		seedBase  = fs.Int64("seed-base", 0, "seed of chunk 0, chunk i uses seed-base+i")
		failChunk = fs.Int("fail-chunk", -1, "force this chunk to fail")
		out       = fs.String("out", "", "write the aggregate result as JSON to this file")
	)
	_ = fs.Parse(args)
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := mcparallel.LoadConfig(*cfgPath)
	if err != nil {
		return nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["processes"] {
		cfg.Processes = *processes
	}
	if set["chunks"] {
		cfg.Chunks = *chunks
	}
	if set["samples"] {
		cfg.SamplesPerChunk = *samples
	}
	if set["integrand"] {
		cfg.Integrand = *integrand
		if !set["config"] {
			cfg.Domain = mcparallel.DefaultDomain(*integrand)
		}
	}
	if set["exec"] {
		cfg.Executor = *executor
	}
	if set["seed-base"] {
		cfg.SeedBase = *seedBase
	}
	if set["fail-chunk"] {
		cfg.FailChunk = failChunk
	}
	if set["out"] {
		cfg.ResultOut = *out
	}
	if cfg.Executor == mcparallel.ExecProcess && len(cfg.WorkerCommand) == 0 {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		cfg.WorkerCommand = []string{exe, mcparallel.WorkerCmd}
	}
	return cfg, nil
}

func runWorker() int {
	// stdout carries the result
	mcparallel.Out = os.Stderr
	if err := mcparallel.ServeWorker(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

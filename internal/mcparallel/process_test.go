package mcparallel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
)

// TestHelperProcess is not a real test: it is the worker process body for the tests below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	Out = os.Stderr
	switch os.Getenv("HELPER_MODE") {
	case "crash":
		fmt.Fprintln(os.Stderr, "worker crashed")
		os.Exit(3)
	case "garbage":
		fmt.Fprintln(os.Stdout, "not json")
		os.Exit(0)
	}
	if err := ServeWorker(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func helperPool(t *testing.T, workers int, mode string) *ProcessPool {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	env := append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_MODE="+mode)
	return &ProcessPool{
		Workers: workers,
		Command: exe,
		Args:    []string{"-test.run=^TestHelperProcess$"},
		Env:     env,
	}
}

func TestProcessPoolMatchesGoroutinePool(t *testing.T) {
	tasks := testTasks(t, 6, 50_000)
	want, err := (&GoroutinePool{Workers: 3}).Execute(context.Background(), tasks, nil)
	if err != nil {
		t.Fatal(err)
	}
	pr := newCountingProgress()
	got, err := helperPool(t, 3, "").Execute(context.Background(), tasks, pr)
	if err != nil {
		t.Fatal(err)
	}
	for i := range tasks {
		if got[i].Chunk != want[i].Chunk || got[i].Seed != want[i].Seed || got[i].Hits != want[i].Hits || got[i].Samples != want[i].Samples {
			t.Fatalf("chunk %d: process %+v goroutine %+v", i, got[i], want[i])
		}
		if pr.chunks[i] != 1 {
			t.Fatalf("chunk %d reported %d times", i, pr.chunks[i])
		}
	}
}

func TestProcessPoolForcedFailure(t *testing.T) {
	tasks := testTasks(t, 4, 1000)
	tasks[2].Fail = true
	got, err := helperPool(t, 2, "").Execute(context.Background(), tasks, nil)
	if got != nil || !errors.Is(err, ErrWorkerFailed) {
		t.Fatalf("expected ErrWorkerFailed and no results, got %v, %+v", err, got)
	}
}

func TestProcessPoolBadWorkers(t *testing.T) {
	tasks := testTasks(t, 2, 1000)
	for _, mode := range []string{"crash", "garbage"} {
		got, err := helperPool(t, 2, mode).Execute(context.Background(), tasks, nil)
		if got != nil || !errors.Is(err, ErrWorkerFailed) {
			t.Fatalf("%s: expected ErrWorkerFailed, got %v", mode, err)
		}
	}
}

func TestProcessPoolExhausted(t *testing.T) {
	tasks := testTasks(t, 2, 1000)
	p := &ProcessPool{Workers: 2, Command: "/nonexistent/mcparallel-worker"}
	_, err := p.Execute(context.Background(), tasks, nil)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
	if _, err := (&ProcessPool{Workers: 2}).Execute(context.Background(), tasks, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("missing command: %v", err)
	}
}

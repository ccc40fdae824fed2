package mcparallel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, prevDebug, prevBar := Out, Debug, ProgressBar
	Out, Debug, ProgressBar = &buf, true, false
	t.Cleanup(func() { Out, Debug, ProgressBar = prev, prevDebug, prevBar })
	return &buf
}

func TestRunPrintsAndSaves(t *testing.T) {
	buf := captureOut(t)
	cfg := smallConfig(4, 10_000, 2)
	cfg.Integrand = "square"
	cfg.Domain = DefaultDomain("square")
	cfg.ResultOut = filepath.Join(t.TempDir(), "result.json")
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"time to perform numerical integration over 10000 entries",
		"[PROGRESS] 100.00%",
		"Integral evaluated over 40000 points = ",
		"Exact value = ",
		"Time taken = ",
		"[DEBUG] run ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "[PROGRESS]"); n != 4 {
		t.Fatalf("expected 4 progress lines, got %d", n)
	}

	data, err := os.ReadFile(cfg.ResultOut)
	if err != nil {
		t.Fatal(err)
	}
	var res AggregateResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.TotalSamples != 40_000 || res.Integrand != "square" || res.RunID == "" {
		t.Fatalf("saved result: %+v", res)
	}
}

func TestRunFailureEmitsNoEstimate(t *testing.T) {
	buf := captureOut(t)
	cfg := smallConfig(3, 1000, 3)
	fail := 0
	cfg.FailChunk = &fail
	cfg.ResultOut = filepath.Join(t.TempDir(), "result.json")
	err := Run(context.Background(), cfg)
	if !errors.Is(err, ErrWorkerFailed) {
		t.Fatalf("expected ErrWorkerFailed, got %v", err)
	}
	if strings.Contains(buf.String(), "Integral evaluated") {
		t.Fatalf("estimate printed after failure:\n%s", buf.String())
	}
	if _, err := os.Stat(cfg.ResultOut); !os.IsNotExist(err) {
		t.Fatalf("result file written after failure: %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	captureOut(t)
	if err := Run(context.Background(), smallConfig(0, 10, 1)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

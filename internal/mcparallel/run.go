package mcparallel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Run samples per cfg and prints the estimate the way the CLI shows it.
func Run(ctx context.Context, cfg *Config) error {
	start := time.Now()
	s, err := NewSampler(cfg)
	if err != nil {
		return err
	}
	res, err := s.Sample(ctx, newProgress(Out, cfg.Chunks))
	if err != nil {
		return err
	}

	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Integral evaluated over %d points = %v\n", res.TotalSamples, res.Estimate)
	fmt.Fprintf(Out, "95%% confidence interval = [%.6f, %.6f], chunk spread = %.6f\n", res.CILow, res.CIHigh, res.ChunkStdDev)
	if exact, ok := Exact(cfg.Integrand); ok && cfg.Domain == DefaultDomain(cfg.Integrand) {
		fmt.Fprintf(Out, "Exact value = %v, error = %.6g\n", exact, res.Estimate-exact)
	}
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Time taken = %.2f sec\n", time.Since(start).Seconds())

	if cfg.ResultOut != "" {
		if err := saveResult(cfg.ResultOut, res); err != nil {
			return err
		}
		DebugLog("Saved result: %s", cfg.ResultOut)
	}
	return nil
}

func saveResult(path string, res *AggregateResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

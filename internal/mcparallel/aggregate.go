package mcparallel

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
)

// AggregateResult is the combined estimate over all chunks.
type AggregateResult struct {
	RunID        string        `json:"runID,omitempty"`
	Integrand    string        `json:"integrand,omitempty"`
	Chunks       int           `json:"chunks"`
	TotalHits    int64         `json:"totalHits"`
	TotalSamples int64         `json:"totalSamples"`
	Estimate     float64       `json:"estimate"`
	StdErr       float64       `json:"stdErr"`
	CILow        float64       `json:"ciLow"`
	CIHigh       float64       `json:"ciHigh"`
	ChunkMean    float64       `json:"chunkMean"`
	ChunkStdDev  float64       `json:"chunkStdDev"`
	Elapsed      time.Duration `json:"elapsedNs,omitempty"`
}

// Aggregate sums the partials; the sum is integer so input order does not matter.
func Aggregate(partials []PartialResult, d Domain) (*AggregateResult, error) {
	if len(partials) == 0 {
		return nil, errors.New("no partial results to aggregate")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	measure := d.Measure()
	h := hbook.NewH1D(StatBins, 0, measure)

	res := &AggregateResult{Chunks: len(partials)}
	for _, p := range partials {
		if p.Samples <= 0 || p.Hits < 0 || p.Hits > p.Samples {
			return nil, errors.Errorf("chunk %d: inconsistent partial result hits=%d samples=%d", p.Chunk, p.Hits, p.Samples)
		}
		res.TotalHits += p.Hits
		res.TotalSamples += p.Samples
		h.Fill(measure*float64(p.Hits)/float64(p.Samples), 1)
	}

	ratio := float64(res.TotalHits) / float64(res.TotalSamples)
	res.Estimate = measure * ratio
	// binomial standard error of the hit ratio, scaled by the domain measure
	res.StdErr = measure * math.Sqrt(ratio*(1-ratio)/float64(res.TotalSamples))
	res.CILow = res.Estimate - Z95*res.StdErr
	res.CIHigh = res.Estimate + Z95*res.StdErr
	res.ChunkMean = h.XMean()
	if len(partials) > 1 {
		res.ChunkStdDev = h.XStdDev()
	}
	if !isFinite(res.ChunkStdDev) {
		res.ChunkStdDev = 0
	}
	return res, nil
}

package samplestats

import (
	"fmt"
	"sync"

	"github.com/montanaflynn/stats"
)

// arrayCollector captures every sample in a slice. Storage and computation
// are both O(n), which is acceptable here: a run is bounded by its iteration
// budget and the collector lives only as long as the run.
type arrayCollector struct {
	samples    []float64
	samplesMux *sync.Mutex
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		samples:    []float64{},
		samplesMux: &sync.Mutex{},
	}
}

func (c *arrayCollector) All() []float64 {
	c.samplesMux.Lock()
	defer c.samplesMux.Unlock()
	samples := make([]float64, len(c.samples))
	copy(samples, c.samples)
	return samples
}

func (c *arrayCollector) Len() int {
	c.samplesMux.Lock()
	defer c.samplesMux.Unlock()
	return len(c.samples)
}

func (c *arrayCollector) Add(x float64) {
	c.samplesMux.Lock()
	c.samples = append(c.samples, x)
	c.samplesMux.Unlock()
}

func (c *arrayCollector) Summarize() *Summary {
	// The stats package creates a copy of the array, so we must hold onto the
	// mutex while calculations are being made.
	c.samplesMux.Lock()
	defer c.samplesMux.Unlock()

	// The stats package requires input arrays to be non-empty.
	if len(c.samples) == 0 {
		return &Summary{}
	}

	mean, err := stats.Mean(c.samples)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating mean: %w", err))
	}
	stdDev, err := stats.StandardDeviation(c.samples)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating stddev: %w", err))
	}
	min, err := stats.Min(c.samples)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating min: %w", err))
	}
	max, err := stats.Max(c.samples)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating max: %w", err))
	}
	p50, err := stats.Median(c.samples)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating p50: %w", err))
	}
	p95, err := stats.Percentile(c.samples, 95)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Summarize() while calculating p95: %w", err))
	}

	return &Summary{
		Count:  len(c.samples),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		P50:    p50,
		P95:    p95,
	}
}

func (c *arrayCollector) Reset() {
	c.samplesMux.Lock()
	c.samples = []float64{}
	c.samplesMux.Unlock()
}

// Package samplestats collects accepted chain samples and computes aggregate
// statistics over them.
package samplestats

// Summary holds aggregate statistics over a set of samples.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

type Collector interface {
	All() []float64      // All gets all the samples collected.
	Len() int            // Len gets the number of samples collected.
	Add(x float64)       // Add sends a new sample to the collector.
	Summarize() *Summary // Summarize calculates aggregate statistics over the collected samples.
	Reset()              // Reset resets the state of the collector for reuse.
}

// Package datagen generates synthetic observations for posterior sampling
// demos. The sampler treats these as an opaque data source.
package datagen

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws n i.i.d. samples from Normal(mean, stddev) using the given
// seed so generated datasets are reproducible.
func Normal(n int, mean, stddev float64, seed uint64) []float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stddev,
		Src:   rand.NewSource(seed),
	}

	observations := make([]float64, n)
	for i := range observations {
		observations[i] = dist.Rand()
	}
	return observations
}

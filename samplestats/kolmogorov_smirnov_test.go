package samplestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func drawNormal(n int, mu, sigma float64, seed uint64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = dist.Rand()
	}
	return samples
}

func TestKolmogorovSmirnovTestRejection_AcceptsSameDistribution(t *testing.T) {
	control := drawNormal(2000, 0, 1, 1)
	candidate := drawNormal(2000, 0, 1, 2)

	assert.False(t, KolmogorovSmirnovTestRejection(control, candidate, P95))
}

func TestKolmogorovSmirnovTestRejection_RejectsShiftedDistribution(t *testing.T) {
	control := drawNormal(2000, 0, 1, 3)
	candidate := drawNormal(2000, 1, 1, 4)

	assert.True(t, KolmogorovSmirnovTestRejection(control, candidate, P95))
}

func TestKolmogorovSmirnovTestRejection_PanicsOnUnknownPercentile(t *testing.T) {
	assert.Panics(t, func() {
		KolmogorovSmirnovTestRejection([]float64{1}, []float64{1}, Percentile(99))
	})
}

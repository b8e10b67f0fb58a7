package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestHistogram_WritesPNG(t *testing.T) {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(1)}
	samples := make([]float64, 2000)
	for i := range samples {
		samples[i] = dist.Rand()
	}

	path := filepath.Join(t.TempDir(), "hist.png")
	err := Histogram(samples, 50, dist.Prob, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogram_RejectsEmptySamples(t *testing.T) {
	err := Histogram(nil, 50, nil, filepath.Join(t.TempDir(), "hist.png"))
	assert.Error(t, err)
}

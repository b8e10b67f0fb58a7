package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestNormal_MatchesRequestedMoments(t *testing.T) {
	observations := Normal(50000, 3, 0.7, 1)

	assert.Len(t, observations, 50000)
	assert.InDelta(t, 3, stat.Mean(observations, nil), 0.02)
	assert.InDelta(t, 0.7, stat.StdDev(observations, nil), 0.02)
}

func TestNormal_IsReproducibleGivenSeed(t *testing.T) {
	assert.Equal(t, Normal(1000, 0, 1, 99), Normal(1000, 0, 1, 99))
}

package samplestats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCollector_SummarizeKnownValues(t *testing.T) {
	c := NewArrayCollector()
	for _, x := range []float64{1, 2, 3, 4, 5} {
		c.Add(x)
	}

	summary := c.Summarize()
	assert.Equal(t, 5, summary.Count)
	assert.InDelta(t, 3, summary.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2), summary.StdDev, 1e-12)
	assert.Equal(t, float64(1), summary.Min)
	assert.Equal(t, float64(5), summary.Max)
	assert.Equal(t, float64(3), summary.P50)
}

func TestArrayCollector_SummarizeEmptyIsZeroValued(t *testing.T) {
	summary := NewArrayCollector().Summarize()
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, float64(0), summary.Mean)
}

func TestArrayCollector_AllReturnsACopy(t *testing.T) {
	c := NewArrayCollector()
	c.Add(1)

	samples := c.All()
	samples[0] = 42

	require.Equal(t, []float64{1}, c.All())
}

func TestArrayCollector_Reset(t *testing.T) {
	c := NewArrayCollector()
	c.Add(1)
	c.Add(2)
	require.Equal(t, 2, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}

package samplestats

// Thin returns every step-th sample, starting from the first. Chain output is
// autocorrelated; thinning decorrelates it enough for distributional tests
// such as KolmogorovSmirnovTestRejection to apply.
func Thin(samples []float64, step int) []float64 {
	if step <= 1 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}

	out := make([]float64, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		out = append(out, samples[i])
	}
	return out
}

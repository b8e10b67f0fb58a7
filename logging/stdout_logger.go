package logging

import (
	"log"

	"github.com/kcz17/mcmc/samplestats"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogAcceptanceRate(runID string, iteration int, rate float64) {
	log.Printf("[run %s] %d: acceptance rate %.2f%%\n", runID, iteration, rate*100)
}

func (*stdoutLogger) LogDegenerateDensity(runID string, iteration int, position float64) {
	log.Printf("[run %s] %d: degenerate density at position %.6f, staying in place\n", runID, iteration, position)
}

func (*stdoutLogger) LogRunCompleted(runID string, iterations int, acceptanceRate float64, summary *samplestats.Summary) {
	log.Printf("[run %s] completed %d iterations, acceptance rate %.2f%%, %d samples, mean %.4f, stddev %.4f\n",
		runID, iterations, acceptanceRate*100, summary.Count, summary.Mean, summary.StdDev)
}

func (*stdoutLogger) LogRunFailed(runID string, err error) {
	log.Printf("[run %s] failed: %v\n", runID, err)
}

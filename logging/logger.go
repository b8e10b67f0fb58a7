package logging

import "github.com/kcz17/mcmc/samplestats"

type Logger interface {
	LogAcceptanceRate(runID string, iteration int, rate float64)         // Takes in the acceptance rate over the last logging period.
	LogDegenerateDensity(runID string, iteration int, position float64) // Called when both current and proposed positions have zero density.
	LogRunCompleted(runID string, iterations int, acceptanceRate float64, summary *samplestats.Summary)
	LogRunFailed(runID string, err error)
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogAcceptanceRate(string, int, float64) {
	return
}

func (*noopLogger) LogDegenerateDensity(string, int, float64) {
	return
}

func (*noopLogger) LogRunCompleted(string, int, float64, *samplestats.Summary) {
	return
}

func (*noopLogger) LogRunFailed(string, error) {
	return
}

package metropolis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned by New when the proposal configuration
// is structurally invalid, e.g. a non-positive scale.
var ErrInvalidConfiguration = errors.New("metropolis: proposal scale must be positive")

// TargetEvaluationError reports a density evaluation that failed to produce a
// finite non-negative value. The chain cannot trust any further evaluation
// once one is untrustworthy, so the run halts rather than skipping.
type TargetEvaluationError struct {
	Position float64 // The position the density was evaluated at.
	Value    float64 // The offending value: negative, NaN or infinite.
}

func (e *TargetEvaluationError) Error() string {
	return fmt.Sprintf("metropolis: target density evaluated to %v at position %v; expected a finite non-negative value", e.Value, e.Position)
}

// isUsableDensity reports whether v is a value the acceptance rule can work
// with: finite and non-negative.
func isUsableDensity(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

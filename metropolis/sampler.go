// Package metropolis implements a single-chain Metropolis sampler: a random
// walk over a caller-supplied unnormalized target density, where each
// proposed move is accepted with probability min(1, target(proposal) /
// target(current)). The proposal distribution is a symmetric uniform
// perturbation, so no Hastings correction is needed.
package metropolis

import (
	"time"

	"golang.org/x/exp/rand"
)

// TargetDensity evaluates the unnormalized target density at a position. It
// must be pure, must return 0 for positions that are impossible under the
// target distribution, and must never return a negative, NaN or infinite
// value for positions it considers valid.
type TargetDensity func(x float64) float64

// ProposalConfig holds the immutable parameters of the proposal mechanism.
type ProposalConfig struct {
	// Scale is the width of the symmetric uniform perturbation window:
	// proposals are drawn as current - delta with delta in
	// [-Scale/2, +Scale/2). Must be positive.
	Scale float64
}

// Sampler drives a single Markov chain. It owns the chain's current position
// exclusively; a Sampler must not be shared across goroutines. Independent
// chains should each get their own Sampler and their own random source.
type Sampler struct {
	target TargetDensity
	scale  float64
	random *rand.Rand

	current float64

	steps           int
	accepted        int
	degenerateSteps int
}

// New constructs a sampler positioned at initial. The source src drives both
// the proposal perturbation and the acceptance draw; pass a seeded source for
// reproducible chains. A nil src is seeded from the wall clock.
func New(target TargetDensity, initial float64, config ProposalConfig, src rand.Source) (*Sampler, error) {
	if config.Scale <= 0 {
		return nil, ErrInvalidConfiguration
	}

	if v := target(initial); !isUsableDensity(v) {
		return nil, &TargetEvaluationError{Position: initial, Value: v}
	}

	if src == nil {
		// Seed from the current time for sufficient uniqueness.
		src = rand.NewSource(uint64(time.Now().UTC().UnixNano()))
	}

	return &Sampler{
		target:  target,
		scale:   config.Scale,
		random:  rand.New(src),
		current: initial,
	}, nil
}

// Step advances the chain by exactly one iteration. The perturbation is
// drawn from the half-open window [-scale/2, +scale/2). Step returns the
// accepted position and true if the proposal was accepted, and the zero
// value and false otherwise. A *TargetEvaluationError is returned if the
// density fails to produce a finite non-negative value; the chain position
// is left untouched in that case.
func (s *Sampler) Step() (float64, bool, error) {
	// delta is uniform over [-scale/2, +scale/2). The proposal is computed as
	// current - delta throughout; the window is symmetric around zero, so the
	// sign convention has no statistical effect.
	delta := (s.random.Float64() - 0.5) * s.scale
	proposal := s.current - delta

	targetCurrent := s.target(s.current)
	if !isUsableDensity(targetCurrent) {
		return 0, false, &TargetEvaluationError{Position: s.current, Value: targetCurrent}
	}
	targetProposal := s.target(proposal)
	if !isUsableDensity(targetProposal) {
		return 0, false, &TargetEvaluationError{Position: proposal, Value: targetProposal}
	}

	s.steps++

	var a float64
	switch {
	case targetCurrent == 0 && targetProposal == 0:
		// Degenerate density: no information to accept on. Remain in place
		// and surface the event through DegenerateSteps rather than failing
		// the run.
		s.degenerateSteps++
		return 0, false, nil
	case targetCurrent == 0:
		// The chain is escaping a zero-density region: always accept.
		a = 1
	default:
		a = targetProposal / targetCurrent
		if a > 1 {
			a = 1
		}
	}

	if u := s.random.Float64(); u < a {
		s.current = proposal
		s.accepted++
		return proposal, true, nil
	}
	return 0, false, nil
}

// Run advances the chain by iterations steps and returns the accepted
// positions in acceptance order. Rejected iterations emit nothing, so the
// result is typically shorter than iterations. If a density evaluation fails,
// Run halts and returns the samples accepted so far together with the error;
// retrying is pointless since evaluation is deterministic for a given
// position.
func (s *Sampler) Run(iterations int) ([]float64, error) {
	samples := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		sample, accepted, err := s.Step()
		if err != nil {
			return samples, err
		}
		if accepted {
			samples = append(samples, sample)
		}
	}
	return samples, nil
}

// Position returns the chain's current position: the initial position before
// any acceptance, and the most recently accepted proposal afterwards.
func (s *Sampler) Position() float64 { return s.current }

// Steps returns the number of completed iterations.
func (s *Sampler) Steps() int { return s.steps }

// Accepted returns the number of accepted proposals.
func (s *Sampler) Accepted() int { return s.accepted }

// DegenerateSteps returns the number of iterations rejected because both the
// current and proposed positions had zero density.
func (s *Sampler) DegenerateSteps() int { return s.degenerateSteps }

// AcceptanceRate returns the fraction of completed iterations that were
// accepted, or 0 before the first iteration.
func (s *Sampler) AcceptanceRate() float64 {
	if s.steps == 0 {
		return 0
	}
	return float64(s.accepted) / float64(s.steps)
}

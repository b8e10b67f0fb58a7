// Package runner executes sampling runs: it builds the target density and
// sampler from a request, drives the chain step by step with diagnostics, and
// packages the outcome as a storable run record.
package runner

import (
	"errors"
	"fmt"

	"github.com/kcz17/mcmc/logging"
	"github.com/kcz17/mcmc/metropolis"
	"github.com/kcz17/mcmc/samplestats"
	"github.com/kcz17/mcmc/steptiming"
	"github.com/kcz17/mcmc/store"
	"golang.org/x/exp/rand"
)

type Options struct {
	// DefaultScale is applied to requests that leave the proposal scale
	// unset. Zero means no default: an unset scale is rejected.
	DefaultScale float64
	// DefaultIterations is applied to requests that leave the iteration
	// budget unset. Zero means no default: an unset budget is rejected.
	DefaultIterations int
	// AcceptanceLogPeriod is the number of iterations between acceptance rate
	// log lines. Zero disables periodic logging.
	AcceptanceLogPeriod int
	// TimingWindow is the size of the step timing window.
	TimingWindow int
	// SampleRetention caps the number of samples kept on the run record.
	// Zero keeps everything. The summary is always computed over all samples.
	SampleRetention int
}

type Runner struct {
	logger logging.Logger
	clock  steptiming.Clock
	opts   Options
}

func New(logger logging.Logger, clock steptiming.Clock, opts Options) *Runner {
	if opts.TimingWindow <= 0 {
		opts.TimingWindow = 1000
	}
	return &Runner{
		logger: logger,
		clock:  clock,
		opts:   opts,
	}
}

// Execute performs the run described by req. Requests that cannot produce a
// chain at all (bad target spec, invalid proposal scale, unusable density at
// the initial position) fail with an error before any iteration. Once the
// chain is running, a density evaluation failure produces a failed run record
// carrying the samples accepted so far rather than an error.
func (r *Runner) Execute(runID string, req Request) (*store.Run, error) {
	if req.Scale == 0 {
		req.Scale = r.opts.DefaultScale
	}
	if req.Iterations == 0 {
		req.Iterations = r.opts.DefaultIterations
	}
	if req.Iterations <= 0 {
		return nil, errors.New("iterations must be positive")
	}

	targetDensity, err := BuildTarget(req.Target)
	if err != nil {
		return nil, fmt.Errorf("could not build target density: %w", err)
	}

	var src rand.Source
	if req.Seed != nil {
		src = rand.NewSource(*req.Seed)
	}

	sampler, err := metropolis.New(targetDensity, req.InitialPosition, metropolis.ProposalConfig{Scale: req.Scale}, src)
	if err != nil {
		return nil, err
	}

	collector := samplestats.NewArrayCollector()
	timer := steptiming.NewTachymeterTimer(r.opts.TimingWindow)

	var runErr error
	acceptedInPeriod := 0
	for i := 0; i < req.Iterations; i++ {
		degenerateBefore := sampler.DegenerateSteps()

		start := r.clock.Now()
		sample, accepted, err := sampler.Step()
		timer.Record(r.clock.Now().Sub(start))

		if err != nil {
			runErr = err
			break
		}
		if accepted {
			collector.Add(sample)
			acceptedInPeriod++
		}
		if sampler.DegenerateSteps() > degenerateBefore {
			r.logger.LogDegenerateDensity(runID, i, sampler.Position())
		}

		if r.opts.AcceptanceLogPeriod > 0 && i > 0 && i%r.opts.AcceptanceLogPeriod == 0 {
			rate := float64(acceptedInPeriod) / float64(r.opts.AcceptanceLogPeriod)
			r.logger.LogAcceptanceRate(runID, i, rate)
			acceptedInPeriod = 0
		}
	}

	run := &store.Run{
		ID:              runID,
		Status:          store.StatusCompleted,
		Iterations:      sampler.Steps(),
		AcceptanceRate:  sampler.AcceptanceRate(),
		DegenerateSteps: sampler.DegenerateSteps(),
		Samples:         r.retainSamples(collector.All()),
		Summary:         collector.Summarize(),
		StepTiming:      timer.Aggregate(),
	}

	if runErr != nil {
		run.Status = store.StatusFailed
		run.Error = runErr.Error()
		r.logger.LogRunFailed(runID, runErr)
		return run, nil
	}

	r.logger.LogRunCompleted(runID, run.Iterations, run.AcceptanceRate, run.Summary)
	return run, nil
}

// retainSamples trims the stored sample slice to the retention cap, keeping
// the tail: the latest samples are the ones past burn-in.
func (r *Runner) retainSamples(samples []float64) []float64 {
	if r.opts.SampleRetention <= 0 || len(samples) <= r.opts.SampleRetention {
		return samples
	}
	return samples[len(samples)-r.opts.SampleRetention:]
}

package runner

import (
	"errors"
	"fmt"

	"github.com/kcz17/mcmc/datagen"
	"github.com/kcz17/mcmc/metropolis"
	"github.com/kcz17/mcmc/target"
)

// TargetSpec describes a target density over the wire. Exactly one family is
// selected by Type; the remaining fields are interpreted per family.
type TargetSpec struct {
	Type string `json:"type"` // One of {gaussian, uniform, constant, posterior}.

	// gaussian: unnormalized Normal(mean, stdDev).
	Mean   float64 `json:"mean,omitempty"`
	StdDev float64 `json:"stdDev,omitempty"`

	// uniform: flat over [lo, hi], zero elsewhere.
	Lo float64 `json:"lo,omitempty"`
	Hi float64 `json:"hi,omitempty"`

	// constant: the same value everywhere.
	Value float64 `json:"value,omitempty"`

	// posterior: conjugate posterior over a Gaussian mean given observations.
	// When Observations is empty, Synthetic describes a dataset to generate
	// instead.
	Observations []float64      `json:"observations,omitempty"`
	Synthetic    *SyntheticSpec `json:"synthetic,omitempty"`
	PriorMean    float64        `json:"priorMean,omitempty"`
	PriorStdDev  float64        `json:"priorStdDev,omitempty"`
	NoiseStdDev  float64        `json:"noiseStdDev,omitempty"`
}

// SyntheticSpec describes synthetic Gaussian observations for demo runs where
// the caller has no dataset of their own.
type SyntheticSpec struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Seed   uint64  `json:"seed"`
}

// Request configures a single sampling run.
type Request struct {
	Target          TargetSpec `json:"target"`
	InitialPosition float64    `json:"initialPosition"`
	Scale           float64    `json:"scale"`
	Iterations      int        `json:"iterations"`
	// Seed, when set, makes the run reproducible. Unset runs are seeded from
	// the wall clock.
	Seed *uint64 `json:"seed,omitempty"`
}

// BuildTarget constructs the target density described by the spec.
func BuildTarget(spec TargetSpec) (metropolis.TargetDensity, error) {
	switch spec.Type {
	case "gaussian":
		if spec.StdDev <= 0 {
			return nil, errors.New("gaussian target requires stdDev > 0")
		}
		return target.Gaussian(spec.Mean, spec.StdDev), nil
	case "uniform":
		if spec.Hi <= spec.Lo {
			return nil, errors.New("uniform target requires hi > lo")
		}
		return target.Uniform(spec.Lo, spec.Hi), nil
	case "constant":
		if spec.Value < 0 {
			return nil, errors.New("constant target requires value >= 0")
		}
		return target.Constant(spec.Value), nil
	case "posterior":
		observations := spec.Observations
		if len(observations) == 0 && spec.Synthetic != nil {
			if spec.Synthetic.N <= 0 || spec.Synthetic.StdDev <= 0 {
				return nil, errors.New("synthetic observations require n > 0 and stdDev > 0")
			}
			observations = datagen.Normal(spec.Synthetic.N, spec.Synthetic.Mean, spec.Synthetic.StdDev, spec.Synthetic.Seed)
		}
		posterior, err := target.NewNormalPosterior(observations, spec.PriorMean, spec.PriorStdDev, spec.NoiseStdDev)
		if err != nil {
			return nil, err
		}
		return posterior.Density(), nil
	default:
		return nil, fmt.Errorf("target type must be one of {gaussian|uniform|constant|posterior}; got %q", spec.Type)
	}
}

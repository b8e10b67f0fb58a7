// Package store persists the results of sampling runs so they can be fetched
// after the run (or, for queued runs, from another process).
package store

import (
	"encoding/json"
	"errors"

	"github.com/kcz17/mcmc/samplestats"
	"github.com/kcz17/mcmc/steptiming"
)

// ErrRunNotFound is returned by Find when no run exists with the given ID.
var ErrRunNotFound = errors.New("store: run not found")

type Status string

const (
	StatusQueued    Status = "queued"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is the stored outcome of one sampling run. Failed runs keep the samples
// accepted before the failure.
type Run struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	// Request is the original run request, kept opaque so the store does not
	// depend on the request schema.
	Request         json.RawMessage         `json:"request,omitempty"`
	Iterations      int                     `json:"iterations"`
	AcceptanceRate  float64                 `json:"acceptanceRate"`
	DegenerateSteps int                     `json:"degenerateSteps"`
	Samples         []float64               `json:"samples"`
	Summary         *samplestats.Summary    `json:"summary,omitempty"`
	StepTiming      *steptiming.Aggregation `json:"stepTiming,omitempty"`
	Error           string                  `json:"error,omitempty"`
}

type Store interface {
	Save(run *Run) error          // Save persists a run, overwriting any run with the same ID.
	Find(id string) (*Run, error) // Find retrieves a run by ID, returning ErrRunNotFound if absent.
}

package worker

import (
	"encoding/json"
	"testing"

	"github.com/kcz17/mcmc/logging"
	"github.com/kcz17/mcmc/runner"
	"github.com/kcz17/mcmc/steptiming"
	"github.com/kcz17/mcmc/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDelivery implements rmq.Delivery for exercising the consumer without a
// redis instance.
type fakeDelivery struct {
	payload  string
	acked    bool
	rejected bool
}

func (d *fakeDelivery) Payload() string { return d.payload }
func (d *fakeDelivery) Ack() error      { d.acked = true; return nil }
func (d *fakeDelivery) Reject() error   { d.rejected = true; return nil }
func (d *fakeDelivery) Push() error     { return nil }

func newTestWorker() (*Worker, store.Store) {
	runs := runner.New(logging.NewNoopLogger(), steptiming.NewRealtimeClock(), runner.Options{})
	s := store.NewMemoryStore()
	return NewWorker(runs, s), s
}

func seed(s uint64) *uint64 { return &s }

func TestConsume_ExecutesJobAndStoresResult(t *testing.T) {
	w, s := newTestWorker()

	payload, err := json.Marshal(Job{
		RunID: "run-1",
		Request: runner.Request{
			Target:     runner.TargetSpec{Type: "gaussian", Mean: 1, StdDev: 0.5},
			Scale:      0.2,
			Iterations: 1000,
			Seed:       seed(3),
		},
	})
	require.NoError(t, err)

	delivery := &fakeDelivery{payload: string(payload)}
	w.Consume(delivery)

	assert.True(t, delivery.acked)
	assert.False(t, delivery.rejected)

	run, err := s.Find("run-1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, run.Status)
	assert.NotEmpty(t, run.Samples)
}

func TestConsume_RecordsFailureForUnrunnableRequest(t *testing.T) {
	w, s := newTestWorker()

	payload, err := json.Marshal(Job{
		RunID:   "run-2",
		Request: runner.Request{Target: runner.TargetSpec{Type: "unknown"}, Scale: 1, Iterations: 10},
	})
	require.NoError(t, err)

	delivery := &fakeDelivery{payload: string(payload)}
	w.Consume(delivery)

	assert.True(t, delivery.acked)

	run, err := s.Find("run-2")
	require.NoError(t, err)
	assert.Equal(t, store.StatusFailed, run.Status)
	assert.NotEmpty(t, run.Error)
}

func TestConsume_RejectsUndecodablePayload(t *testing.T) {
	w, _ := newTestWorker()

	delivery := &fakeDelivery{payload: "{not json"}
	w.Consume(delivery)

	assert.True(t, delivery.rejected)
	assert.False(t, delivery.acked)
}

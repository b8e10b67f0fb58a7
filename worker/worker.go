// Package worker runs sampling jobs from a redis-backed queue. Long runs are
// enqueued by the API server and executed out of band, with results written
// to the shared run store.
package worker

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/adjust/rmq/v3"
	"github.com/kcz17/mcmc/runner"
	"github.com/kcz17/mcmc/store"
)

// Job is the queue payload for one sampling run.
type Job struct {
	RunID   string         `json:"runId"`
	Request runner.Request `json:"request"`
}

// Producer enqueues sampling jobs.
type Producer struct {
	queue rmq.Queue
}

func (p *Producer) Enqueue(job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("could not marshal job for run %s: %w", job.RunID, err)
	}
	return p.queue.Publish(string(payload))
}

// Worker consumes sampling jobs and executes them.
type Worker struct {
	runner *runner.Runner
	store  store.Store
}

// Options configures queue consumption.
type Options struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QueueName     string
	PrefetchLimit int64
}

// Open connects to the queue, starts consuming with the given worker, and
// returns a producer publishing to the same queue. Pass a nil worker to open
// the queue for publishing only.
func Open(opts Options, worker *Worker) (*Producer, error) {
	errChan := make(chan error)
	go func() {
		for err := range errChan {
			log.Printf("rmq background error: %v\n", err)
		}
	}()

	connection, err := rmq.OpenConnection("metropolis", "tcp", opts.RedisAddr, opts.RedisDB, errChan)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis queue: %w", err)
	}

	queue, err := connection.OpenQueue(opts.QueueName)
	if err != nil {
		return nil, fmt.Errorf("could not open queue %s: %w", opts.QueueName, err)
	}

	if worker != nil {
		if err := queue.StartConsuming(opts.PrefetchLimit, time.Second); err != nil {
			return nil, fmt.Errorf("could not start consuming: %w", err)
		}
		if _, err := queue.AddConsumer("metropolis-worker", worker); err != nil {
			return nil, fmt.Errorf("could not add consumer: %w", err)
		}
	}

	return &Producer{queue: queue}, nil
}

func NewWorker(r *runner.Runner, s store.Store) *Worker {
	return &Worker{runner: r, store: s}
}

// Consume implements rmq.Consumer. Undecodable payloads are rejected; once a
// job is decoded its outcome, success or failure, is recorded on the store
// and the delivery acked.
func (w *Worker) Consume(delivery rmq.Delivery) {
	var job Job
	if err := json.Unmarshal([]byte(delivery.Payload()), &job); err != nil {
		log.Printf("rejecting undecodable job payload: %v\n", err)
		if err := delivery.Reject(); err != nil {
			log.Printf("could not reject delivery: %v\n", err)
		}
		return
	}

	run, err := w.runner.Execute(job.RunID, job.Request)
	if err != nil {
		// The request could not produce a chain. Record the failure so the
		// client polling the run sees a terminal state.
		run = &store.Run{
			ID:     job.RunID,
			Status: store.StatusFailed,
			Error:  err.Error(),
		}
	}

	if err := w.store.Save(run); err != nil {
		log.Printf("could not save run %s: %v\n", job.RunID, err)
	}

	if err := delivery.Ack(); err != nil {
		log.Printf("could not ack delivery for run %s: %v\n", job.RunID, err)
	}
}

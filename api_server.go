package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	routing "github.com/jackwhelpton/fasthttp-routing/v2"
	"github.com/kcz17/mcmc/plotting"
	"github.com/kcz17/mcmc/runner"
	"github.com/kcz17/mcmc/store"
	"github.com/kcz17/mcmc/worker"
	"github.com/valyala/fasthttp"
)

type APIServer struct {
	Runner *runner.Runner
	Store  store.Store
	// Producer is nil when the queue is disabled.
	Producer *worker.Producer
	// PlotDir is where rendered histograms are written before being served.
	PlotDir string
}

func (s *APIServer) ListenAndServe(addr string) error {
	router := routing.New()

	router.Get("/health", s.healthHandler())

	router.Post("/runs", s.createRunHandler())
	router.Post("/runs/enqueue", s.enqueueRunHandler())
	router.Get("/runs/<id>", s.getRunHandler())
	router.Get("/runs/<id>/histogram", s.getRunHistogramHandler())

	return fasthttp.ListenAndServe(addr, router.HandleRequest)
}

func (s *APIServer) healthHandler() routing.Handler {
	return func(c *routing.Context) error {
		return c.Write("ok\n")
	}
}

// createRunHandler executes a run synchronously. Suitable for short chains;
// long chains should be enqueued instead.
func (s *APIServer) createRunHandler() routing.Handler {
	return func(c *routing.Context) error {
		var req runner.Request
		if err := c.Read(&req); err != nil {
			return routing.NewHTTPError(fasthttp.StatusBadRequest, fmt.Sprintf("could not parse body: %v", err))
		}

		run, err := s.Runner.Execute(uuid.New().String(), req)
		if err != nil {
			return routing.NewHTTPError(fasthttp.StatusBadRequest, err.Error())
		}
		attachRequest(run, req)

		if err := s.Store.Save(run); err != nil {
			return fmt.Errorf("could not save run: %w", err)
		}
		return writeJSON(c, run)
	}
}

func (s *APIServer) enqueueRunHandler() routing.Handler {
	return func(c *routing.Context) error {
		if s.Producer == nil {
			return routing.NewHTTPError(fasthttp.StatusServiceUnavailable, "queue is disabled")
		}

		var req runner.Request
		if err := c.Read(&req); err != nil {
			return routing.NewHTTPError(fasthttp.StatusBadRequest, fmt.Sprintf("could not parse body: %v", err))
		}

		run := &store.Run{ID: uuid.New().String(), Status: store.StatusQueued}
		attachRequest(run, req)
		if err := s.Store.Save(run); err != nil {
			return fmt.Errorf("could not save queued run: %w", err)
		}

		if err := s.Producer.Enqueue(worker.Job{RunID: run.ID, Request: req}); err != nil {
			return fmt.Errorf("could not enqueue run: %w", err)
		}
		return writeJSON(c, run)
	}
}

func (s *APIServer) getRunHandler() routing.Handler {
	return func(c *routing.Context) error {
		run, err := s.findRun(c.Param("id"))
		if err != nil {
			return err
		}
		return writeJSON(c, run)
	}
}

// getRunHistogramHandler renders the run's samples as a PNG histogram. When
// the original target can be rebuilt from the stored request, its density is
// drawn over the histogram for visual comparison.
func (s *APIServer) getRunHistogramHandler() routing.Handler {
	return func(c *routing.Context) error {
		run, err := s.findRun(c.Param("id"))
		if err != nil {
			return err
		}
		if len(run.Samples) == 0 {
			return routing.NewHTTPError(fasthttp.StatusConflict, "run has no samples to plot")
		}

		var overlay func(float64) float64
		var req runner.Request
		if len(run.Request) > 0 && json.Unmarshal(run.Request, &req) == nil {
			if density, err := runner.BuildTarget(req.Target); err == nil {
				overlay = density
			}
		}

		path := fmt.Sprintf("%s/%s.png", s.PlotDir, run.ID)
		if err := plotting.Histogram(run.Samples, 100, overlay, path); err != nil {
			return fmt.Errorf("could not render histogram: %w", err)
		}

		c.Response.Header.SetContentType("image/png")
		c.SendFile(path)
		return nil
	}
}

func (s *APIServer) findRun(id string) (*store.Run, error) {
	run, err := s.Store.Find(id)
	if errors.Is(err, store.ErrRunNotFound) {
		return nil, routing.NewHTTPError(fasthttp.StatusNotFound, "run not found")
	} else if err != nil {
		return nil, fmt.Errorf("could not fetch run: %w", err)
	}
	return run, nil
}

func attachRequest(run *store.Run, req runner.Request) {
	// Best effort: the request is stored so clients and the histogram
	// endpoint can see what produced the run.
	if b, err := json.Marshal(req); err == nil {
		run.Request = b
	}
}

func writeJSON(c *routing.Context, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal response: err = %w", err)
	}
	c.Response.Header.SetContentType("application/json")
	return c.Write(b)
}

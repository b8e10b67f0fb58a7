package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kcz17/mcmc/config"
	"github.com/kcz17/mcmc/logging"
	"github.com/kcz17/mcmc/runner"
	"github.com/kcz17/mcmc/steptiming"
	"github.com/kcz17/mcmc/store"
	"github.com/kcz17/mcmc/worker"
)

func main() {
	conf := config.ReadConfig()

	var logger logging.Logger
	if *conf.Logging.Driver == "noop" {
		logger = logging.NewNoopLogger()
	} else if *conf.Logging.Driver == "stdout" {
		logger = logging.NewStdoutLogger()
	} else if *conf.Logging.Driver == "influxdb" {
		logger = logging.NewInfluxDBLogger(
			*conf.Logging.InfluxDB.Host,
			*conf.Logging.InfluxDB.Token,
			*conf.Logging.InfluxDB.Org,
			*conf.Logging.InfluxDB.Bucket,
		)
	} else {
		log.Fatalf("expected logging.driver one of {noop, stdout, influxdb}; got %s", *conf.Logging.Driver)
	}

	var runStore store.Store
	if *conf.Store.Driver == "memory" {
		runStore = store.NewMemoryStore()
	} else if *conf.Store.Driver == "redis" {
		runStore = store.NewRedisStore(
			*conf.Store.Redis.Addr,
			stringOrEmpty(conf.Store.Redis.Password),
			*conf.Store.Redis.DB,
		)
	} else {
		log.Fatalf("expected store.driver one of {memory, redis}; got %s", *conf.Store.Driver)
	}

	runs := runner.New(logger, steptiming.NewRealtimeClock(), runner.Options{
		DefaultScale:        *conf.Sampling.DefaultScale,
		DefaultIterations:   *conf.Sampling.DefaultIterations,
		AcceptanceLogPeriod: *conf.Sampling.AcceptanceLogPeriod,
		TimingWindow:        *conf.Sampling.TimingWindow,
		SampleRetention:     *conf.Sampling.SampleRetention,
	})

	var producer *worker.Producer
	if *conf.Queue.Enabled {
		var err error
		producer, err = worker.Open(worker.Options{
			RedisAddr:     *conf.Queue.Redis.Addr,
			RedisPassword: stringOrEmpty(conf.Queue.Redis.Password),
			RedisDB:       *conf.Queue.Redis.DB,
			QueueName:     *conf.Queue.Name,
			PrefetchLimit: int64(*conf.Queue.PrefetchLimit),
		}, worker.NewWorker(runs, runStore))
		if err != nil {
			log.Fatalf("expected err == nil in worker.Open(); got err = %v", err)
		}
	}

	server := &APIServer{
		Runner:   runs,
		Store:    runStore,
		Producer: producer,
		PlotDir:  os.TempDir(),
	}
	addr := fmt.Sprintf(":%d", *conf.Server.Port)
	log.Printf("serving on %s\n", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Fatalf("error serving API: %v", err)
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package logging

import (
	"log"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/kcz17/mcmc/samplestats"
)

// influxDBLogger logs the output to an external InfluxDB instance.
type influxDBLogger struct {
	client      influxdb2.Client
	asyncWriter api.WriteAPI
}

func NewInfluxDBLogger(baseURL, authToken, org, bucket string) *influxDBLogger {
	options := influxdb2.DefaultOptions()
	options.WriteOptions().SetBatchSize(1000)
	options.WriteOptions().SetFlushInterval(250)

	client := influxdb2.NewClientWithOptions(baseURL, authToken, options)
	writeAPI := client.WriteAPI(org, bucket)

	// Create a goroutine for reading and logging async write errors.
	errorsCh := writeAPI.Errors()
	go func() {
		for err := range errorsCh {
			log.Printf("influxdb2 logging async write error: %v\n", err)
		}
	}()

	return &influxDBLogger{
		client:      client,
		asyncWriter: writeAPI,
	}
}

func (l *influxDBLogger) LogAcceptanceRate(runID string, iteration int, rate float64) {
	p := influxdb2.NewPointWithMeasurement("chain_acceptance_rate").
		AddTag("run_id", runID).
		AddField("iteration", iteration).
		AddField("rate", rate).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogDegenerateDensity(runID string, iteration int, position float64) {
	p := influxdb2.NewPointWithMeasurement("chain_degenerate_density").
		AddTag("run_id", runID).
		AddField("iteration", iteration).
		AddField("position", position).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogRunCompleted(runID string, iterations int, acceptanceRate float64, summary *samplestats.Summary) {
	p := influxdb2.NewPointWithMeasurement("chain_run_completed").
		AddTag("run_id", runID).
		AddField("iterations", iterations).
		AddField("acceptance_rate", acceptanceRate).
		AddField("samples", summary.Count).
		AddField("mean", summary.Mean).
		AddField("stddev", summary.StdDev).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogRunFailed(runID string, err error) {
	p := influxdb2.NewPointWithMeasurement("chain_run_failed").
		AddTag("run_id", runID).
		AddField("error", err.Error()).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

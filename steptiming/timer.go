// Package steptiming instruments sampler iterations with wall-clock timings.
package steptiming

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

// Aggregation holds percentile step latencies over the timing window.
type Aggregation struct {
	P50 time.Duration `json:"p50"` // P50 is the 50th percentile step duration.
	P95 time.Duration `json:"p95"` // P95 is the 95th percentile step duration.
	Max time.Duration `json:"max"` // Max is the slowest step in the window.
}

type Timer interface {
	Record(d time.Duration)  // Record sends a new step duration to the timer.
	Aggregate() *Aggregation // Aggregate calculates percentile timings over the window.
	Reset()                  // Reset resets the state of the timer for reuse.
}

// tachymeterTimer uses the jamiealquiza/tachymeter library to capture and
// calculate timings locally. Timings are kept in a fixed-size window so a
// long chain does not grow timing storage without bound.
type tachymeterTimer struct {
	tach *tachymeter.Tachymeter
}

func NewTachymeterTimer(window int) *tachymeterTimer {
	return &tachymeterTimer{tach: tachymeter.New(&tachymeter.Config{
		Size: window,
	})}
}

func (t *tachymeterTimer) Record(d time.Duration) {
	t.tach.AddTime(d)
}

func (t *tachymeterTimer) Aggregate() *Aggregation {
	calc := t.tach.Calc()
	return &Aggregation{
		P50: calc.Time.P50,
		P95: calc.Time.P95,
		Max: calc.Time.Max,
	}
}

func (t *tachymeterTimer) Reset() {
	t.tach.Reset()
}

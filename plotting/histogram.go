// Package plotting renders sample histograms. It is a pure output sink over
// the sampler's emitted sequence.
package plotting

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram writes a normalized histogram of samples to a PNG at path. When
// overlay is non-nil it is drawn as a line over the histogram, which is how a
// chain is eyeballed against its analytical target.
func Histogram(samples []float64, bins int, overlay func(float64) float64, path string) error {
	if len(samples) == 0 {
		return errors.New("plotting: no samples to plot")
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("could not create plot: %w", err)
	}
	p.Title.Text = "Sample distribution"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "density"

	hist, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return fmt.Errorf("could not create histogram: %w", err)
	}
	// Scale the histogram to unit area so it is comparable to a density.
	hist.Normalize(1)
	p.Add(hist)

	if overlay != nil {
		f := plotter.NewFunction(overlay)
		f.Samples = 500
		p.Add(f)
	}

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save plot to %s: %w", path, err)
	}
	return nil
}

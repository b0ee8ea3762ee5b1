package data

import (
	"context"
	"fmt"

	"github.com/banachtech/vasicek/mc"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// RollingOptions controls Rolling.
type RollingOptions struct {
	// Workers bounds concurrent calibrations, 1 if not positive.
	Workers int
	// Progress shows a progress bar on stderr.
	Progress bool
	// Calibrate options passed to every window.
	Calibrate []mc.CalibrateOption
}

// Rolling recalibrates the model on every window of length window, producing
// one Estimate per date from index window-1 onwards. Any failed window fails
// the whole run.
func Rolling(ctx context.Context, s *Series, window int, dt float64, opts RollingOptions) ([]Estimate, error) {
	if window < 2 {
		return nil, &mc.InputError{Op: "rolling", Field: "window", Value: float64(window), Msg: "need at least 2 observations"}
	}
	if window > s.Len() {
		return nil, &mc.InputError{Op: "rolling", Field: "window", Value: float64(window), Msg: "longer than the series"}
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	n := s.Len() - window + 1
	out := make([]Estimate, n)

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressBar(n, "calibrating")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			end := i + window
			m, err := mc.Calibrate(s.rates[i:end], dt, opts.Calibrate...)
			if err != nil {
				return fmt.Errorf("window ending %s: %w", s.dates[end-1].Format(Layout), err)
			}
			out[i] = Estimate{Date: s.dates[end-1], Rate: s.rates[end-1], Model: m}
			if bar != nil {
				bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ModelPrices prices a zero-coupon bond of the given maturity on each
// estimate's date with that date's model and short rate.
func ModelPrices(estimates []Estimate, maturity float64) ([]float64, error) {
	out := make([]float64, len(estimates))
	for i, e := range estimates {
		p, err := e.Model.Price(e.Rate, maturity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Date.Format(Layout), err)
		}
		out[i] = p
	}
	return out, nil
}

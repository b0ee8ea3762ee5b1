package mainfuncs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/banachtech/vasicek/backtest"
	"github.com/banachtech/vasicek/data"
	"github.com/banachtech/vasicek/mc"
)

type BacktestOptions struct {
	Window   int
	Dt       float64
	Maturity float64
	Workers  int
	Progress bool
	Rows     bool
	Config   backtest.Config
}

type BacktestResult struct {
	Config  backtest.Config  `json:"config"`
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	Summary backtest.Summary `json:"summary"`
	Rows    []backtest.Row   `json:"rows,omitempty"`
}

// Backtest recalibrates on a rolling window of rates and trades the bond
// against market prices. Every window end date needs a market price.
func Backtest(ctx context.Context, w io.Writer, rates, market *data.Series, opts BacktestOptions) error {
	estimates, err := data.Rolling(ctx, rates, opts.Window, opts.Dt, data.RollingOptions{Workers: opts.Workers, Progress: opts.Progress})
	if err != nil {
		return err
	}
	model, err := data.ModelPrices(estimates, opts.Maturity)
	if err != nil {
		return err
	}

	prices := make(map[time.Time]float64, market.Len())
	for i := 0; i < market.Len(); i++ {
		d, p := market.At(i)
		prices[d] = p
	}
	dates := make([]time.Time, len(estimates))
	mkt := make([]float64, len(estimates))
	for i, e := range estimates {
		p, ok := prices[e.Date]
		if !ok {
			return &mc.InputError{Op: "backtest", Field: "market", Value: float64(i), Msg: fmt.Sprintf("no market price on %s", e.Date.Format(data.Layout))}
		}
		dates[i], mkt[i] = e.Date, p
	}

	res, err := backtest.Run(dates, mkt, model, opts.Config)
	if err != nil {
		return err
	}
	out := BacktestResult{
		Config:  res.Config,
		Start:   dates[0],
		End:     dates[len(dates)-1],
		Summary: res.Summary,
	}
	if opts.Rows {
		out.Rows = res.Rows
	}
	return writeJSON(w, out)
}

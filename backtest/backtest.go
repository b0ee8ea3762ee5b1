package backtest

import (
	"math"
	"time"

	"github.com/banachtech/vasicek/mc"
	"gonum.org/v1/gonum/stat"
)

// Defaults for Config.
const (
	DefaultThreshold = 0.02
	DefaultCapital   = 1_000_000.0
)

// Config of the long/short mispricing rule.
type Config struct {
	// Threshold is the relative deviation (market-model)/model needed to trade.
	Threshold float64 `json:"threshold" yaml:"threshold" mapstructure:"threshold"`
	// Capital is the starting portfolio value.
	Capital float64 `json:"capital" yaml:"capital" mapstructure:"capital"`
}

func (c Config) withDefaults() Config {
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.Capital == 0 {
		c.Capital = DefaultCapital
	}
	return c
}

// Row is one period of the backtest.
type Row struct {
	Date         time.Time `json:"date"`
	Market       float64   `json:"market"`
	Model        float64   `json:"model"`
	DiffPct      float64   `json:"diff_pct"`
	Signal       int       `json:"signal"`
	Position     int       `json:"position"`
	MarketReturn float64   `json:"market_return"`
	// ReturnPct is the strategy return in percent.
	ReturnPct float64 `json:"return_pct"`
	Equity    float64 `json:"equity"`
}

// Summary statistics of the strategy returns, as fractions.
type Summary struct {
	Mean        float64 `json:"mean"`
	Std         float64 `json:"std"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	MaxDrawDown float64 `json:"max_drawdown"`
	FinalValue  float64 `json:"final_value"`
	TotalReturn float64 `json:"total_return"`
	Trades      int     `json:"trades"`
}

type Result struct {
	Config  Config  `json:"config"`
	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

// Equity returns the portfolio value curve.
func (r *Result) Equity() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Equity
	}
	return out
}

// Run backtests the rule: short the bond when the market price is more than
// Threshold above the model price, long when more than Threshold below.
// Signals are acted on in the following period.
func Run(dates []time.Time, market, model []float64, cfg Config) (*Result, error) {
	if err := validate(dates, market, model); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	if math.IsNaN(cfg.Threshold) || cfg.Threshold < 0 {
		return nil, &mc.InputError{Op: "backtest", Field: "threshold", Value: cfg.Threshold, Msg: "must be non-negative"}
	}
	if !(cfg.Capital > 0) || math.IsInf(cfg.Capital, 1) {
		return nil, &mc.InputError{Op: "backtest", Field: "capital", Value: cfg.Capital, Msg: "must be positive"}
	}

	n := len(dates)
	rows := make([]Row, n)
	rets := make([]float64, n)
	equity := cfg.Capital
	trades := 0
	for t := 0; t < n; t++ {
		diff := (market[t] - model[t]) / model[t]
		row := Row{
			Date:    dates[t],
			Market:  market[t],
			Model:   model[t],
			DiffPct: diff,
			Signal:  signal(diff, cfg.Threshold),
		}
		if t > 0 {
			row.Position = rows[t-1].Signal
			row.MarketReturn = market[t]/market[t-1] - 1
			if row.Position != rows[t-1].Position {
				trades++
			}
		}
		ret := float64(row.Position) * row.MarketReturn
		equity *= 1 + ret
		row.ReturnPct = ret * 100
		row.Equity = equity
		rets[t] = ret
		rows[t] = row
	}

	res := &Result{Config: cfg, Rows: rows}
	res.Summary = summarize(rets, res.Equity(), cfg.Capital)
	res.Summary.Trades = trades
	return res, nil
}

func signal(diff, threshold float64) int {
	switch {
	case diff > threshold:
		return -1
	case diff < -threshold:
		return 1
	}
	return 0
}

func validate(dates []time.Time, market, model []float64) error {
	if len(market) != len(dates) || len(model) != len(dates) {
		return &mc.InputError{Op: "backtest", Field: "prices", Value: float64(len(market)), Msg: "market, model and dates must have equal length"}
	}
	if len(dates) < 2 {
		return &mc.InputError{Op: "backtest", Field: "dates", Value: float64(len(dates)), Msg: "need at least 2 periods"}
	}
	for i := range dates {
		if dates[i].IsZero() {
			return &mc.InputError{Op: "backtest", Field: "dates", Value: float64(i), Msg: "zero date"}
		}
		if i > 0 && !dates[i].After(dates[i-1]) {
			return &mc.InputError{Op: "backtest", Field: "dates", Value: float64(i), Msg: "dates must be strictly increasing"}
		}
		if !(market[i] > 0) || math.IsInf(market[i], 1) {
			return &mc.InputError{Op: "backtest", Field: "market", Value: market[i], Msg: "prices must be positive and finite"}
		}
		if !(model[i] > 0) || math.IsInf(model[i], 1) {
			return &mc.InputError{Op: "backtest", Field: "model", Value: model[i], Msg: "prices must be positive and finite"}
		}
	}
	return nil
}

func summarize(rets, equity []float64, capital float64) Summary {
	mean, std := stat.MeanStdDev(rets, nil)
	min, max := minmax(rets)
	final := equity[len(equity)-1]
	return Summary{
		Mean:        mean,
		Std:         std,
		Min:         min,
		Max:         max,
		MaxDrawDown: maxDrawDown(equity),
		FinalValue:  final,
		TotalReturn: final/capital - 1,
	}
}

func minmax(array []float64) (float64, float64) {
	max := array[0]
	min := array[0]
	for _, value := range array {
		if max < value {
			max = value
		}
		if min > value {
			min = value
		}
	}
	return min, max
}

// maxDrawDown is the worst fall from a running peak, as a non-positive fraction.
func maxDrawDown(equity []float64) float64 {
	peak := equity[0]
	dd := 0.0
	for _, x := range equity {
		if x > peak {
			peak = x
		}
		if r := x/peak - 1; r < dd {
			dd = r
		}
	}
	return dd
}

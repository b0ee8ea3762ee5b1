package mc

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultDt is one trading day as a fraction of a year.
const DefaultDt = 1.0 / 252.0

// Initial guess used when none is supplied. These are tunable starting
// values; b defaults to the sample mean of the series.
const (
	DefaultGuessA     = 0.1
	DefaultGuessSigma = 0.01
)

// VasicekBounds is the search box for (a, b, sigma).
var VasicekBounds = []Bound{
	{Lo: 1e-6, Hi: 5},
	{Lo: 0, Hi: 1},
	{Lo: 1e-6, Hi: 1},
}

type calibrateConfig struct {
	optimizer Optimizer
	guess     []float64
	maxIter   int
}

// CalibrateOption configures Calibrate.
type CalibrateOption func(*calibrateConfig)

// WithOptimizer replaces the default Nelder-Mead optimizer.
func WithOptimizer(opt Optimizer) CalibrateOption {
	return func(c *calibrateConfig) { c.optimizer = opt }
}

// WithInitialGuess sets the starting point (a, b, sigma).
func WithInitialGuess(a, b, sigma float64) CalibrateOption {
	return func(c *calibrateConfig) { c.guess = []float64{a, b, sigma} }
}

// WithMaxIterations caps the iterations of the default optimizer.
func WithMaxIterations(n int) CalibrateOption {
	return func(c *calibrateConfig) { c.maxIter = n }
}

// NegLogLikelihood returns the negative Gaussian log-likelihood of the
// discretised Vasicek transitions r[t+1] | r[t] ~ N(r[t] + a(b - r[t])dt, sigma^2 dt)
// as a function of the parameter vector (a, b, sigma).
func NegLogLikelihood(rates []float64, dt float64) func([]float64) float64 {
	n := len(rates) - 1
	return func(p []float64) float64 {
		a, b, sigma := p[0], p[1], p[2]
		if sigma <= 0 || a <= 0 {
			return math.Inf(1)
		}
		v := sigma * sigma * dt
		c := math.Log(2.0 * math.Pi * v)
		ll := 0.0
		for t := 0; t < n; t++ {
			mu := rates[t] + a*(b-rates[t])*dt
			d := rates[t+1] - mu
			ll += c + d*d/v
		}
		return 0.5 * ll
	}
}

// Calibrate fits (a, b, sigma) to a short rate series sampled every dt years
// by maximum likelihood. It fails with a *CalibrationError when the optimizer
// does not converge.
func Calibrate(rates []float64, dt float64, opts ...CalibrateOption) (Vasicek, error) {
	if len(rates) < 2 {
		return Vasicek{}, invalid("calibrate", "rates", float64(len(rates)), "need at least 2 observations")
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return Vasicek{}, invalid("calibrate", "dt", dt, "time step must be positive")
	}
	for _, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return Vasicek{}, invalid("calibrate", "rates", r, "rates must be finite")
		}
	}

	cfg := calibrateConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.optimizer == nil {
		cfg.optimizer = NelderMead{MaxIterations: cfg.maxIter}
	}
	if cfg.guess == nil {
		cfg.guess = []float64{DefaultGuessA, stat.Mean(rates, nil), DefaultGuessSigma}
	}
	// the starting point must have a finite objective
	for i, b := range VasicekBounds {
		cfg.guess[i] = math.Min(math.Max(cfg.guess[i], b.Lo), b.Hi)
	}

	var m Model = Vasicek{A: cfg.guess[0], B: cfg.guess[1], Sigma: cfg.guess[2]}
	m, err := Fit(m, NegLogLikelihood(rates, dt), VasicekBounds, cfg.optimizer)
	if err != nil {
		return Vasicek{}, err
	}
	return m.(Vasicek), nil
}

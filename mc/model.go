package mc

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Model interface to be satisfied by short rate model types.
type Model interface {
	// Compute a short rate path from r0 for a vector of timesteps and standard normal shocks
	Path(float64, []float64, []float64) []float64
	// Price a zero-coupon bond for a short rate and maturity
	Price(float64, float64) (float64, error)
	// Get model parameters as a vector
	Get() []float64
	// Create a model for the given parameter vector
	Set([]float64) Model
}

// Bound is a closed search interval for one parameter.
type Bound struct {
	Lo, Hi float64
}

// Problem is an objective to minimize, its search box and a starting point.
type Problem struct {
	Func   func([]float64) float64
	Bounds []Bound
	Init   []float64
}

// OptimizeResult is the outcome of a minimization. Converged is false when the
// optimizer stopped for any reason other than reaching a convergence criterion.
type OptimizeResult struct {
	X          []float64
	F          float64
	Status     optimize.Status
	Converged  bool
	Iterations int
}

// Optimizer minimizes a bounded objective. Implementations may use Bounds
// directly; the objective handed over by Fit is already +Inf outside them.
type Optimizer interface {
	Minimize(Problem) (OptimizeResult, error)
}

// NelderMead is the default Optimizer, a derivative free simplex search.
type NelderMead struct {
	// MaxIterations caps major iterations, 0 means no cap.
	MaxIterations int
	// Tolerance is the absolute and relative function convergence threshold.
	Tolerance float64
}

const defaultTolerance = 1e-10

func (nm NelderMead) Minimize(p Problem) (OptimizeResult, error) {
	tol := nm.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}
	problem := optimize.Problem{Func: p.Func}
	settings := &optimize.Settings{
		MajorIterations: nm.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   tol,
			Relative:   tol,
			Iterations: 100,
		},
	}
	res, err := optimize.Minimize(problem, p.Init, settings, &optimize.NelderMead{})
	if res == nil {
		return OptimizeResult{Status: optimize.Failure}, err
	}
	out := OptimizeResult{
		X:          res.X,
		F:          res.F,
		Status:     res.Status,
		Converged:  converged(res.Status),
		Iterations: res.Stats.MajorIterations,
	}
	return out, err
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
		return true
	}
	return false
}

// Barrier returns f with +Inf outside the bounds and in place of NaN values.
func Barrier(f func([]float64) float64, bounds []Bound) func([]float64) float64 {
	return func(x []float64) float64 {
		if !inBounds(x, bounds) {
			return math.Inf(1)
		}
		v := f(x)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}
}

func inBounds(x []float64, bounds []Bound) bool {
	for i, b := range bounds {
		if i >= len(x) {
			return false
		}
		if math.IsNaN(x[i]) || x[i] < b.Lo || x[i] > b.Hi {
			return false
		}
	}
	return true
}

// Fit calibrates m by minimizing f over the bounded parameter space, starting
// from the current model parameters. The model is only updated on convergence.
func Fit(m Model, f func([]float64) float64, bounds []Bound, opt Optimizer) (Model, error) {
	if opt == nil {
		opt = NelderMead{}
	}
	problem := Problem{
		Func:   Barrier(f, bounds),
		Bounds: bounds,
		Init:   m.Get(),
	}
	res, err := opt.Minimize(problem)
	if err != nil {
		return m, &CalibrationError{Status: res.Status, X: res.X, Err: err}
	}
	if !res.Converged || math.IsInf(res.F, 0) || math.IsNaN(res.F) || !inBounds(res.X, bounds) {
		return m, &CalibrationError{Status: res.Status, X: res.X}
	}
	return m.Set(res.X), nil
}

package mc

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulation defaults.
const (
	DefaultHorizon = 1.0
	DefaultSteps   = 252
	DefaultPaths   = 10
)

type pathConfig struct {
	workers int
}

// PathOption configures Paths.
type PathOption func(*pathConfig)

// WithWorkers integrates paths on up to n goroutines. Output does not depend on n.
func WithWorkers(n int) PathOption {
	return func(c *pathConfig) { c.workers = n }
}

// NewSource returns a source seeded with seed, or with the clock when seed is nil.
func NewSource(seed *uint64) rand.Source {
	if seed == nil {
		return rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return rand.NewSource(*seed)
}

// Paths simulates nPaths short rate paths over horizon T with nSteps Euler-Maruyama
// steps. The result has nSteps+1 rows (row 0 holds r0) and nPaths columns.
//
// All normal variates come from src and are drawn row-major: the nPaths draws
// for step 1, then the nPaths draws for step 2, and so on. The same seed
// therefore reproduces the same matrix regardless of WithWorkers. A nil src
// is replaced by a clock seeded source.
func (m Vasicek) Paths(r0, T float64, nSteps, nPaths int, src rand.Source, opts ...PathOption) (*mat.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(r0) || math.IsInf(r0, 0) {
		return nil, invalid("paths", "r0", r0, "initial rate must be finite")
	}
	if !(T > 0) || math.IsInf(T, 1) {
		return nil, invalid("paths", "T", T, "horizon must be positive")
	}
	if nSteps < 1 {
		return nil, invalid("paths", "nSteps", float64(nSteps), "need at least one step")
	}
	if nPaths < 1 {
		return nil, invalid("paths", "nPaths", float64(nPaths), "need at least one path")
	}
	if nPaths > math.MaxInt/(nSteps+1) {
		return nil, invalid("paths", "nPaths", float64(nPaths), "too many steps*paths")
	}
	cfg := pathConfig{workers: 1}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if src == nil {
		src = NewSource(nil)
	}

	dt := T / float64(nSteps)
	if !(dt > 0) {
		return nil, &DomainError{Op: "paths", Value: dt, Msg: "square root of non-positive time step"}
	}
	dts := make([]float64, nSteps)
	for i := range dts {
		dts[i] = dt
	}

	// Draw every shock before integrating so the stream order is fixed.
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: src}
	z := mat.NewDense(nSteps, nPaths, nil)
	for i := 0; i < nSteps; i++ {
		for j := 0; j < nPaths; j++ {
			z.Set(i, j, d.Rand())
		}
	}

	out := mat.NewDense(nSteps+1, nPaths, nil)
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for j := 0; j < nPaths; j++ {
		j := j
		g.Go(func() error {
			out.SetCol(j, m.Path(r0, dts, mat.Col(nil, j, z)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PathStats returns the cross-sectional mean and standard deviation of the
// simulated rates at each time step.
func PathStats(paths *mat.Dense) (mean, std []float64) {
	rows, cols := paths.Dims()
	mean = make([]float64, rows)
	std = make([]float64, rows)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, paths)
		if cols < 2 {
			mean[i] = row[0]
			continue
		}
		mean[i], std[i] = stat.MeanStdDev(row, nil)
	}
	return mean, std
}

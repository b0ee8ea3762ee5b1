package mc

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestPaths(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}

	paths, err := m.Paths(0.03, 1.0, 252, 10, rand.NewSource(1))
	require.NoError(t, err)
	rows, cols := paths.Dims()
	require.Equal(t, 253, rows)
	require.Equal(t, 10, cols)
	for j := 0; j < cols; j++ {
		require.Equal(t, 0.03, paths.At(0, j))
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.False(t, math.IsNaN(paths.At(i, j)))
		}
	}
}

func TestPathsSeeded(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}

	p1, err := m.Paths(0.03, 1.0, 50, 8, rand.NewSource(42))
	require.NoError(t, err)
	p2, err := m.Paths(0.03, 1.0, 50, 8, rand.NewSource(42))
	require.NoError(t, err)
	require.True(t, mat.Equal(p1, p2))

	p3, err := m.Paths(0.03, 1.0, 50, 8, rand.NewSource(42), WithWorkers(4))
	require.NoError(t, err)
	require.True(t, mat.Equal(p1, p3))

	p4, err := m.Paths(0.03, 1.0, 50, 8, rand.NewSource(43))
	require.NoError(t, err)
	require.False(t, mat.Equal(p1, p4))
}

func TestPathsUnseeded(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}

	p1, err := m.Paths(0.03, 1.0, 20, 4, nil)
	require.NoError(t, err)
	time.Sleep(time.Microsecond)
	p2, err := m.Paths(0.03, 1.0, 20, 4, nil)
	require.NoError(t, err)
	require.False(t, mat.Equal(p1, p2))
}

func TestPathsDrawOrder(t *testing.T) {
	m := Vasicek{A: 2.0, B: 0.05, Sigma: 0.02}
	nSteps, nPaths := 5, 3
	T := 0.5

	paths, err := m.Paths(0.01, T, nSteps, nPaths, rand.NewSource(99), WithWorkers(3))
	require.NoError(t, err)

	d := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(99)}
	z := make([][]float64, nSteps)
	for i := range z {
		z[i] = make([]float64, nPaths)
		for j := range z[i] {
			z[i][j] = d.Rand()
		}
	}
	dt := T / float64(nSteps)
	for j := 0; j < nPaths; j++ {
		r := 0.01
		for i := 0; i < nSteps; i++ {
			r = r + m.A*(m.B-r)*dt + m.Sigma*math.Sqrt(dt)*z[i][j]
			require.Equal(t, r, paths.At(i+1, j))
		}
	}
}

func TestPathsErrors(t *testing.T) {
	good := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}
	for _, test := range []struct {
		name   string
		m      Vasicek
		r0, T  float64
		nSteps int
		nPaths int
	}{
		{name: "ZERO_STEPS", m: good, r0: 0.03, T: 1, nSteps: 0, nPaths: 5},
		{name: "ZERO_PATHS", m: good, r0: 0.03, T: 1, nSteps: 10, nPaths: 0},
		{name: "ZERO_HORIZON", m: good, r0: 0.03, T: 0, nSteps: 10, nPaths: 5},
		{name: "NEGATIVE_HORIZON", m: good, r0: 0.03, T: -1, nSteps: 10, nPaths: 5},
		{name: "NAN_RATE", m: good, r0: math.NaN(), T: 1, nSteps: 10, nPaths: 5},
		{name: "SIZE_OVERFLOW", m: good, r0: 0.03, T: 1, nSteps: 4, nPaths: 1 << 62},
		{name: "BAD_MODEL", m: Vasicek{A: 0.5, B: 0.04, Sigma: -0.01}, r0: 0.03, T: 1, nSteps: 10, nPaths: 5},
	} {
		t.Run(test.name, func(t *testing.T) {
			paths, err := test.m.Paths(test.r0, test.T, test.nSteps, test.nPaths, rand.NewSource(1))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput))
			require.Nil(t, paths)
		})
	}
}

func TestPathStats(t *testing.T) {
	paths := mat.NewDense(2, 4, []float64{
		0.03, 0.03, 0.03, 0.03,
		0.01, 0.02, 0.03, 0.04,
	})
	mean, std := PathStats(paths)
	require.InDelta(t, 0.03, mean[0], 1e-15)
	require.InDelta(t, 0.025, mean[1], 1e-15)
	require.InDelta(t, 0.0, std[0], 1e-15)
	require.InDelta(t, 0.0129099, std[1], 1e-6)

	single := mat.NewDense(2, 1, []float64{0.03, 0.05})
	mean, std = PathStats(single)
	require.Equal(t, []float64{0.03, 0.05}, mean)
	require.Equal(t, []float64{0, 0}, std)
}

func TestPathsMeanReversion(t *testing.T) {
	m := Vasicek{A: 3.0, B: 0.06, Sigma: 0.005}
	paths, err := m.Paths(0.01, 5.0, 500, 200, rand.NewSource(5), WithWorkers(8))
	require.NoError(t, err)

	mean, _ := PathStats(paths)
	require.InDelta(t, m.B, mean[len(mean)-1], 0.002)
}

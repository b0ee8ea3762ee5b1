package mc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewVasicek(t *testing.T) {
	for _, test := range []struct {
		name     string
		a, b, s  float64
		hasError bool
	}{
		{name: "OK", a: 0.5, b: 0.04, s: 0.01},
		{name: "NEGATIVE_MEAN", a: 0.5, b: -0.01, s: 0.01},
		{name: "ZERO_SPEED", a: 0, b: 0.04, s: 0.01, hasError: true},
		{name: "NEGATIVE_SPEED", a: -0.3, b: 0.04, s: 0.01, hasError: true},
		{name: "ZERO_VOL", a: 0.5, b: 0.04, s: 0, hasError: true},
		{name: "NAN_MEAN", a: 0.5, b: math.NaN(), s: 0.01, hasError: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			m, err := NewVasicek(test.a, test.b, test.s)
			if test.hasError {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Equal(t, []float64{test.a, test.b, test.s}, m.Get())
		})
	}
}

func TestPrice(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}

	p, err := m.Price(0.03, 1.0)
	require.NoError(t, err)
	require.Greater(t, p, 0.9)
	require.Less(t, p, 1.0)
	require.InDelta(t, 0.968391, p, 1e-5)

	y, err := Yield(p, 1.0)
	require.NoError(t, err)
	require.Greater(t, y, 0.03)
	require.Less(t, y, 0.04)

	p, err = m.Price(0.03, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, p)

	p, err = m.Price(0.03, 1e-9)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-9)
}

func TestPriceErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		m    Vasicek
		r, T float64
	}{
		{name: "ZERO_SPEED", m: Vasicek{A: 0, B: 0.04, Sigma: 0.01}, r: 0.03, T: 1},
		{name: "ZERO_VOL", m: Vasicek{A: 0.5, B: 0.04, Sigma: 0}, r: 0.03, T: 1},
		{name: "NEGATIVE_MATURITY", m: Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}, r: 0.03, T: -1},
		{name: "NAN_RATE", m: Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}, r: math.NaN(), T: 1},
	} {
		t.Run(test.name, func(t *testing.T) {
			p, err := test.m.Price(test.r, test.T)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput))
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			require.True(t, math.IsNaN(p))
		})
	}
}

func TestPriceBounds(t *testing.T) {
	maturities := []float64{0.25, 0.5, 1, 2, 5, 10, 30}
	for _, a := range []float64{0.1, 0.5, 2.0} {
		for _, b := range []float64{0.02, 0.05} {
			for _, s := range []float64{0.005, 0.01} {
				m := Vasicek{A: a, B: b, Sigma: s}
				for _, r := range []float64{0, 0.03, 0.08} {
					for _, T := range maturities {
						p, err := m.Price(r, T)
						require.NoError(t, err)
						require.Greater(t, p, 0.0)
						require.LessOrEqual(t, p, 1.0)
					}
				}
			}
		}
	}
}

func TestYieldRoundTrip(t *testing.T) {
	m := Vasicek{A: 0.8, B: 0.05, Sigma: 0.02}
	for _, T := range []float64{0.1, 1, 3.5, 10, 25} {
		p, err := m.Price(0.045, T)
		require.NoError(t, err)
		y, err := Yield(p, T)
		require.NoError(t, err)
		require.InEpsilon(t, p, math.Exp(-y*T), 1e-9)
	}
}

func TestYieldErrors(t *testing.T) {
	_, err := Yield(0.95, 0)
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Yield(0, 1)
	require.True(t, errors.Is(err, ErrDomain))

	_, err = Yield(-0.2, 1)
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, -0.2, domainErr.Value)
}

func TestCurve(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}
	maturities := []float64{0.5, 1, 2, 2, 5, 10}

	curve, err := m.YieldCurve(0.03, maturities)
	require.NoError(t, err)
	require.Len(t, curve, len(maturities))
	for i, T := range maturities {
		p, err := m.Price(0.03, T)
		require.NoError(t, err)
		y, err := Yield(p, T)
		require.NoError(t, err)
		require.Equal(t, y, curve[i])
	}
	require.Equal(t, curve[2], curve[3])

	// restartable
	again, err := m.YieldCurve(0.03, maturities)
	require.NoError(t, err)
	require.Equal(t, curve, again)

	// early exit
	n := 0
	for range m.Curve(0.03, maturities) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestCurveZeroMaturity(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}

	var got []float64
	var gotErr error
	for y, err := range m.Curve(0.03, []float64{1, 0, 2}) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, y)
	}
	require.Len(t, got, 1)
	require.True(t, errors.Is(gotErr, ErrInvalidInput))

	_, err := m.YieldCurve(0.03, []float64{1, 0, 2})
	require.Error(t, err)
}

func TestPrices(t *testing.T) {
	m := Vasicek{A: 0.5, B: 0.04, Sigma: 0.01}
	prices, err := m.Prices(0.03, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, prices, 3)
	require.Greater(t, prices[0], prices[1])
	require.Greater(t, prices[1], prices[2])

	_, err = m.Prices(0.03, []float64{1, -2})
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	m := Vasicek{A: 1.0, B: 0.05, Sigma: 0.01}
	dt := []float64{0.5, 0.5}
	path := m.Path(0.03, dt, []float64{0, 0})
	require.Len(t, path, 3)
	require.Equal(t, 0.03, path[0])
	require.InDelta(t, 0.04, path[1], 1e-15)
	require.InDelta(t, 0.045, path[2], 1e-15)
}

package data

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/banachtech/vasicek/mc"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func businessDays(n int) []time.Time {
	d := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, 0, n)
	for len(out) < n {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}

func simulatedSeries(t *testing.T, n int, seed uint64) *Series {
	m := mc.Vasicek{A: 1.5, B: 0.05, Sigma: 0.01}
	paths, err := m.Paths(0.04, float64(n-1)*mc.DefaultDt, n-1, 1, rand.NewSource(seed))
	require.NoError(t, err)
	s, err := NewSeries(businessDays(n), mat.Col(nil, 0, paths))
	require.NoError(t, err)
	return s
}

func TestNewSeries(t *testing.T) {
	d := businessDays(3)
	for _, test := range []struct {
		name     string
		dates    []time.Time
		rates    []float64
		hasError bool
	}{
		{name: "OK", dates: d, rates: []float64{0.01, 0.02, 0.03}},
		{name: "NEGATIVE_RATE", dates: d, rates: []float64{-0.001, 0.02, 0.03}},
		{name: "EMPTY", hasError: true},
		{name: "LENGTH_MISMATCH", dates: d, rates: []float64{0.01}, hasError: true},
		{name: "UNSORTED", dates: []time.Time{d[2], d[0], d[1]}, rates: []float64{0.01, 0.02, 0.03}, hasError: true},
		{name: "DUPLICATE", dates: []time.Time{d[0], d[0], d[1]}, rates: []float64{0.01, 0.02, 0.03}, hasError: true},
		{name: "NAN", dates: d, rates: []float64{0.01, math.NaN(), 0.03}, hasError: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			s, err := NewSeries(test.dates, test.rates)
			if test.hasError {
				require.Error(t, err)
				require.True(t, errors.Is(err, mc.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(test.rates), s.Len())
			require.Equal(t, test.rates, s.Rates())
		})
	}
}

func TestSeriesImmutable(t *testing.T) {
	d := businessDays(2)
	rates := []float64{0.01, 0.02}
	s, err := NewSeries(d, rates)
	require.NoError(t, err)

	rates[0] = 9
	got := s.Rates()
	require.Equal(t, 0.01, got[0])
	got[1] = 9
	require.Equal(t, []float64{0.01, 0.02}, s.Rates())

	last, r := s.Last()
	require.Equal(t, d[1], last)
	require.Equal(t, 0.02, r)
}

func TestSeriesSlice(t *testing.T) {
	d := businessDays(5)
	s, err := NewSeries(d, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	sub, err := s.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, sub.Rates())

	_, err = s.Slice(3, 3)
	require.Error(t, err)
	_, err = s.Slice(0, 6)
	require.Error(t, err)

	between, err := s.Between(d[2], time.Time{})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 5}, between.Rates())

	_, err = s.Between(d[4].AddDate(0, 0, 1), time.Time{})
	require.Error(t, err)
}

func TestSeriesCalibrate(t *testing.T) {
	s := simulatedSeries(t, 500, 3)
	m, err := s.Calibrate(mc.DefaultDt)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	short, err := NewSeries(businessDays(1), []float64{0.03})
	require.NoError(t, err)
	_, err = short.Calibrate(mc.DefaultDt)
	require.True(t, errors.Is(err, mc.ErrInvalidInput))
}

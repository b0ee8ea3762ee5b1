package data

import (
	"context"
	"errors"
	"testing"

	"github.com/banachtech/vasicek/mc"
	"github.com/stretchr/testify/require"
)

func TestRolling(t *testing.T) {
	s := simulatedSeries(t, 80, 11)
	window := 60

	serial, err := Rolling(context.Background(), s, window, mc.DefaultDt, RollingOptions{})
	require.NoError(t, err)
	require.Len(t, serial, s.Len()-window+1)

	dates := s.Dates()
	rates := s.Rates()
	for i, e := range serial {
		require.Equal(t, dates[i+window-1], e.Date)
		require.Equal(t, rates[i+window-1], e.Rate)
		require.NoError(t, e.Model.Validate())
	}

	first, err := mc.Calibrate(rates[:window], mc.DefaultDt)
	require.NoError(t, err)
	require.Equal(t, first, serial[0].Model)

	parallel, err := Rolling(context.Background(), s, window, mc.DefaultDt, RollingOptions{Workers: 4})
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	prices, err := ModelPrices(serial, 0.25)
	require.NoError(t, err)
	require.Len(t, prices, len(serial))
	for _, p := range prices {
		require.Greater(t, p, 0.0)
		require.Less(t, p, 1.0)
	}
}

func TestRollingErrors(t *testing.T) {
	s := simulatedSeries(t, 10, 1)

	_, err := Rolling(context.Background(), s, 1, mc.DefaultDt, RollingOptions{})
	require.True(t, errors.Is(err, mc.ErrInvalidInput))

	_, err = Rolling(context.Background(), s, 11, mc.DefaultDt, RollingOptions{})
	require.True(t, errors.Is(err, mc.ErrInvalidInput))

	_, err = Rolling(context.Background(), s, 5, 0, RollingOptions{})
	require.True(t, errors.Is(err, mc.ErrInvalidInput))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Rolling(ctx, s, 5, mc.DefaultDt, RollingOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestModelPricesError(t *testing.T) {
	_, err := ModelPrices([]Estimate{{Rate: 0.03}}, 1)
	require.True(t, errors.Is(err, mc.ErrInvalidInput))
}

package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const observationsBody = `{
  "observation_start": "2024-01-01",
  "observation_end": "2024-01-05",
  "units": "lin",
  "count": 4,
  "observations": [
    {"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-01", "value": "."},
    {"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-02", "value": "5.20"},
    {"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-03", "value": "5.21"},
    {"realtime_start": "2024-06-01", "realtime_end": "2024-06-01", "date": "2024-01-04", "value": "5.19"}
  ]
}`

func newTestFred(t *testing.T, handler http.HandlerFunc) *FredClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewFredClient("test-key", 100)
	require.NoError(t, err)
	c.BaseURL = server.URL
	c.HTTP = server.Client()
	return c
}

func TestFredObservations(t *testing.T) {
	c := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/series/observations", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "DTB3", q.Get("series_id"))
		require.Equal(t, "test-key", q.Get("api_key"))
		require.Equal(t, "json", q.Get("file_type"))
		require.Equal(t, "2024-01-01", q.Get("observation_start"))
		require.Empty(t, q.Get("observation_end"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(observationsBody))
	})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := c.Observations(context.Background(), "", from, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	rates := s.Rates()
	require.InDelta(t, 0.052, rates[0], 1e-12)
	require.InDelta(t, 0.0521, rates[1], 1e-12)
	require.InDelta(t, 0.0519, rates[2], 1e-12)
	d, _ := s.At(0)
	require.Equal(t, "2024-01-02", d.Format(Layout))
}

func TestFredErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "BAD_REQUEST",
			status: http.StatusBadRequest,
			body:   `{"error_code": 400, "error_message": "Bad Request. The series does not exist."}`,
			check: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.True(t, errors.As(err, &httpErr))
				require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
				require.Contains(t, httpErr.Msg, "does not exist")
			},
		},
		{
			name:   "SERVER_ERROR",
			status: http.StatusInternalServerError,
			body:   `oops`,
			check: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.True(t, errors.As(err, &httpErr))
				require.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Msg)
			},
		},
		{
			name:   "MALFORMED",
			status: http.StatusOK,
			body:   `{"observations": [`,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
		{
			name:   "ALL_MISSING",
			status: http.StatusOK,
			body:   `{"observations": [{"date": "2024-01-01", "value": "."}]}`,
			check: func(t *testing.T, err error) {
				require.True(t, errors.Is(err, ErrNoObservations))
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			})
			s, err := c.Observations(context.Background(), "NOPE", time.Time{}, time.Time{})
			require.Nil(t, s)
			test.check(t, err)
		})
	}
}

func TestFredCancelled(t *testing.T) {
	c := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(observationsBody))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Observations(ctx, "DTB3", time.Time{}, time.Time{})
	require.Error(t, err)
}

func TestNewFredClientKey(t *testing.T) {
	t.Setenv(FredKeyEnv, "")
	_, err := NewFredClient("", 1)
	require.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv(FredKeyEnv, "from-env")
	c, err := NewFredClient("", 1)
	require.NoError(t, err)
	require.Equal(t, "from-env", c.APIKey)
}

func TestFredSeries(t *testing.T) {
	c := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/series", r.URL.Path)
		require.Equal(t, "DTB3", r.URL.Query().Get("series_id"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"seriess": [{"id": "DTB3", "title": "3-Month Treasury Bill Secondary Market Rate, Discount Basis",
			"observation_start": "1954-01-04", "observation_end": "2024-06-28", "frequency": "Daily", "units": "Percent",
			"last_updated": "2024-07-01 15:18:02-05"}]}`))
	})

	info, err := c.Series(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "DTB3", info.ID)
	require.Equal(t, "Percent", info.Units)
	require.Equal(t, "Daily", info.Frequency)

	empty := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"seriess": []}`))
	})
	_, err = empty.Series(context.Background(), "NOPE")
	require.True(t, errors.Is(err, ErrNoObservations))

	missing := newTestFred(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": 400, "error_message": "Bad Request. The series does not exist."}`))
	})
	_, err = missing.Series(context.Background(), "NOPE")
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultFredURL    = "https://api.stlouisfed.org/fred"
	DefaultFredSeries = "DTB3" // 3-month treasury bill, secondary market, percent
	FredKeyEnv        = "FRED_API_KEY"
)

var (
	ErrMissingAPIKey  = errors.New("missing FRED api key")
	ErrNoObservations = errors.New("no observations")
)

// FredClient downloads short rate series from the FRED observations endpoint.
type FredClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	limiter *rate.Limiter
}

// NewFredClient returns a client limited to rps requests per second. An empty
// apiKey is read from FRED_API_KEY, loading .env when present.
func NewFredClient(apiKey string, rps float64) (*FredClient, error) {
	if apiKey == "" {
		k, err := lookupKey(FredKeyEnv)
		if err != nil {
			return nil, err
		}
		apiKey = k
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if rps <= 0 {
		rps = 2
	}
	return &FredClient{
		BaseURL: DefaultFredURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Observations fetches seriesID between from and to (zero means unbounded).
// Missing values are dropped and percent quotes are converted to decimals.
func (c *FredClient) Observations(ctx context.Context, seriesID string, from, to time.Time) (*Series, error) {
	if seriesID == "" {
		seriesID = DefaultFredSeries
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	if !from.IsZero() {
		q.Set("observation_start", from.Format(Layout))
	}
	if !to.IsZero() {
		q.Set("observation_end", to.Format(Layout))
	}
	resp, err := getJSON(ctx, c.client(), c.endpoint("series/observations", seriesID, q), fredObservationsResponse{})
	if err != nil {
		return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
	}

	var dates []time.Time
	var rates []float64
	for _, o := range resp.Observations {
		if o.Value == "." || o.Value == "" {
			continue
		}
		d, err := time.Parse(Layout, o.Date)
		if err != nil {
			return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
		}
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
		}
		dates = append(dates, d)
		rates = append(rates, v/100)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("fred series %s: %w", seriesID, ErrNoObservations)
	}
	s, err := NewSeries(dates, rates)
	if err != nil {
		return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
	}
	return s, nil
}

// Series fetches the metadata of seriesID.
func (c *FredClient) Series(ctx context.Context, seriesID string) (SeriesInfo, error) {
	if seriesID == "" {
		seriesID = DefaultFredSeries
	}
	if err := c.wait(ctx); err != nil {
		return SeriesInfo{}, err
	}
	resp, err := getJSON(ctx, c.client(), c.endpoint("series", seriesID, url.Values{}), fredSeriesResponse{})
	if err != nil {
		return SeriesInfo{}, fmt.Errorf("fred series %s: %w", seriesID, err)
	}
	if len(resp.Seriess) == 0 {
		return SeriesInfo{}, fmt.Errorf("fred series %s: %w", seriesID, ErrNoObservations)
	}
	return resp.Seriess[0], nil
}

func (c *FredClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *FredClient) client() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *FredClient) endpoint(path, seriesID string, q url.Values) string {
	q.Set("series_id", seriesID)
	q.Set("api_key", c.APIKey)
	q.Set("file_type", "json")
	return fmt.Sprintf("%s/%s?%s", c.BaseURL, path, q.Encode())
}

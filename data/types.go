package data

import (
	"math"
	"time"

	"github.com/banachtech/vasicek/mc"
)

const Layout = "2006-01-02"

// Series is an immutable short rate series with strictly increasing dates.
// Rates are decimals, 0.05 meaning 5%.
type Series struct {
	dates []time.Time
	rates []float64
}

// NewSeries copies dates and rates into a validated Series.
func NewSeries(dates []time.Time, rates []float64) (*Series, error) {
	if len(dates) != len(rates) {
		return nil, &mc.InputError{Op: "series", Field: "rates", Value: float64(len(rates)), Msg: "length must match dates"}
	}
	if len(dates) == 0 {
		return nil, &mc.InputError{Op: "series", Field: "dates", Value: 0, Msg: "empty series"}
	}
	for i := range dates {
		if i > 0 && !dates[i].After(dates[i-1]) {
			return nil, &mc.InputError{Op: "series", Field: "dates", Value: float64(i), Msg: "dates must be strictly increasing"}
		}
		if math.IsNaN(rates[i]) || math.IsInf(rates[i], 0) {
			return nil, &mc.InputError{Op: "series", Field: "rates", Value: rates[i], Msg: "rates must be finite"}
		}
	}
	s := &Series{
		dates: append([]time.Time(nil), dates...),
		rates: append([]float64(nil), rates...),
	}
	return s, nil
}

func (s *Series) Len() int { return len(s.rates) }

// Dates returns a copy of the observation dates.
func (s *Series) Dates() []time.Time { return append([]time.Time(nil), s.dates...) }

// Rates returns a copy of the observed rates.
func (s *Series) Rates() []float64 { return append([]float64(nil), s.rates...) }

func (s *Series) At(i int) (time.Time, float64) { return s.dates[i], s.rates[i] }

// Last observation.
func (s *Series) Last() (time.Time, float64) { return s.At(s.Len() - 1) }

// Slice returns the observations in [i, j).
func (s *Series) Slice(i, j int) (*Series, error) {
	if i < 0 || j > s.Len() || i >= j {
		return nil, &mc.InputError{Op: "series", Field: "range", Value: float64(j - i), Msg: "out of range"}
	}
	return &Series{dates: s.dates[i:j:j], rates: s.rates[i:j:j]}, nil
}

// Between returns the observations dated within [from, to]. Zero bounds are open.
func (s *Series) Between(from, to time.Time) (*Series, error) {
	var dates []time.Time
	var rates []float64
	for i, d := range s.dates {
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		dates = append(dates, d)
		rates = append(rates, s.rates[i])
	}
	return NewSeries(dates, rates)
}

// Calibrate fits a Vasicek model to the series sampled every dt years.
func (s *Series) Calibrate(dt float64, opts ...mc.CalibrateOption) (mc.Vasicek, error) {
	return mc.Calibrate(s.rates, dt, opts...)
}

// Estimate is a model calibrated on the window ending at Date, where the short rate was Rate.
type Estimate struct {
	Date  time.Time  `json:"date"`
	Rate  float64    `json:"rate"`
	Model mc.Vasicek `json:"model"`
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredObservationsResponse struct {
	ObservationStart string            `json:"observation_start"`
	ObservationEnd   string            `json:"observation_end"`
	Units            string            `json:"units"`
	Count            int               `json:"count"`
	Observations     []fredObservation `json:"observations"`
}

// SeriesInfo is the FRED metadata of a series.
type SeriesInfo struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ObservationStart string `json:"observation_start"`
	ObservationEnd   string `json:"observation_end"`
	Frequency        string `json:"frequency"`
	Units            string `json:"units"`
	LastUpdated      string `json:"last_updated"`
}

type fredSeriesResponse struct {
	Seriess []SeriesInfo `json:"seriess"`
}

type fredErrorResponse struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

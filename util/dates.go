package util

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

// TradingDaysPerYear converts business day counts to year fractions.
const TradingDaysPerYear = 252

// Years covered by NYSE.
const (
	NYSEFirstYear = 2015
	NYSELastYear  = 2026
)

// NYSECovers reports whether NYSE lists every holiday between start and end.
func NYSECovers(start, end time.Time) bool {
	return start.Year() >= NYSEFirstYear && end.Year() <= NYSELastYear
}

// NYSE full-day closures from NYSEFirstYear through NYSELastYear.
var NYSE = []string{
	"2015-01-01", "2015-01-19", "2015-02-16", "2015-04-03", "2015-05-25", "2015-07-03", "2015-09-07", "2015-11-26", "2015-12-25",
	"2016-01-01", "2016-01-18", "2016-02-15", "2016-03-25", "2016-05-30", "2016-07-04", "2016-09-05", "2016-11-24", "2016-12-26",
	"2017-01-02", "2017-01-16", "2017-02-20", "2017-04-14", "2017-05-29", "2017-07-04", "2017-09-04", "2017-11-23", "2017-12-25",
	"2018-01-01", "2018-01-15", "2018-02-19", "2018-03-30", "2018-05-28", "2018-07-04", "2018-09-03", "2018-11-22", "2018-12-05", "2018-12-25",
	"2019-01-01", "2019-01-21", "2019-02-18", "2019-04-19", "2019-05-27", "2019-07-04", "2019-09-02", "2019-11-28", "2019-12-25",
	"2020-01-01", "2020-01-20", "2020-02-17", "2020-04-10", "2020-05-25", "2020-07-03", "2020-09-07", "2020-11-26", "2020-12-25",
	"2021-01-01", "2021-01-18", "2021-02-15", "2021-04-02", "2021-05-31", "2021-07-05", "2021-09-06", "2021-11-25", "2021-12-24",
	"2022-01-17", "2022-02-21", "2022-04-15", "2022-05-30", "2022-06-20", "2022-07-04", "2022-09-05", "2022-11-24", "2022-12-26",
	"2023-01-02", "2023-01-16", "2023-02-20", "2023-04-07", "2023-05-29", "2023-06-19", "2023-07-04", "2023-09-04", "2023-11-23", "2023-12-25",
	"2024-01-01", "2024-01-15", "2024-02-19", "2024-03-29", "2024-05-27", "2024-06-19", "2024-07-04", "2024-09-02", "2024-11-28", "2024-12-25",
	"2025-01-01", "2025-01-09", "2025-01-20", "2025-02-17", "2025-04-18", "2025-05-26", "2025-06-19", "2025-07-04", "2025-09-01", "2025-11-27", "2025-12-25",
	"2026-01-01", "2026-01-19", "2026-02-16", "2026-04-03", "2026-05-25", "2026-06-19", "2026-07-03", "2026-09-07", "2026-11-26", "2026-12-25",
}

// Convert holidays from string to time.Time format
func Hols(s []string) ([]time.Time, error) {
	h := make([]time.Time, len(s))
	for i, v := range s {
		d, err := time.Parse(Layout, v)
		if err != nil {
			return nil, err
		}
		h[i] = d
	}
	return h, nil
}

func IsHol(d time.Time, hols []time.Time) bool {
	for _, v := range hols {
		if d.Equal(v) {
			return true
		}
	}
	return false
}

func IsWeekday(d time.Time) bool {
	return d.Weekday() > time.Sunday && d.Weekday() < time.Saturday
}

// AdjustFollowing rolls d forward to the next business day.
func AdjustFollowing(d time.Time, hols []time.Time) time.Time {
	for IsHol(d, hols) || !IsWeekday(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// Return a list of business days from (and including) a start date to (and including) an end date according to a holiday calendar
func ListBusinessDates(start time.Time, end time.Time, hols []time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, errors.New("end date must be later than start date")
	}
	start = AdjustFollowing(start, hols)
	if start.After(end) {
		return []time.Time{}, nil
	}
	out := []time.Time{start}
	for {
		start = AdjustFollowing(start.AddDate(0, 0, 1), hols)
		if start.After(end) {
			return out, nil
		}
		out = append(out, start)
	}
}

// NextBusinessDates returns n business days, the first being start adjusted following.
func NextBusinessDates(start time.Time, n int, hols []time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := AdjustFollowing(start, hols)
	for len(out) < n {
		out = append(out, d)
		d = AdjustFollowing(d.AddDate(0, 0, 1), hols)
	}
	return out
}

// YearFraction counts business days in (start, end] and divides by TradingDaysPerYear.
func YearFraction(start, end time.Time, hols []time.Time) (float64, error) {
	days, err := ListBusinessDates(start.AddDate(0, 0, 1), end, hols)
	if err != nil {
		return 0, err
	}
	return float64(len(days)) / TradingDaysPerYear, nil
}

package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// Percent divides every rate by 100, for sources quoting 5.0 for 5%.
	Percent bool
	// Layout of the date column, Layout if empty.
	Layout string
	// Comma is the field delimiter, ',' if zero.
	Comma rune
}

// ReadCSV reads a date,rate series. A header row is skipped, as are rows
// whose rate is empty or "." (missing observations).
func ReadCSV(r io.Reader, opt CSVOptions) (*Series, error) {
	layout := opt.Layout
	if layout == "" {
		layout = Layout
	}
	cr := csv.NewReader(r)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var dates []time.Time
	var rates []float64
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("read csv: line %d: expected date and rate columns", i+1)
		}
		value := strings.TrimSpace(rec[1])
		d, derr := time.Parse(layout, strings.TrimSpace(rec[0]))
		if derr != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("read csv: line %d: %w", i+1, derr)
		}
		if value == "" || value == "." {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: line %d: %w", i+1, err)
		}
		if opt.Percent {
			v /= 100
		}
		dates = append(dates, d)
		rates = append(rates, v)
	}
	return NewSeries(dates, rates)
}

// WriteCSV writes the series as date,rate rows with a header.
func WriteCSV(w io.Writer, s *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "rate"}); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		d, r := s.At(i)
		if err := cw.Write([]string{d.Format(Layout), strconv.FormatFloat(r, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package data

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    string
		opt      CSVOptions
		rates    []float64
		hasError bool
	}{
		{
			name:  "HEADER_PERCENT",
			input: "DATE,DTB3\n2024-01-02,5.20\n2024-01-03,.\n2024-01-04,5.22\n",
			opt:   CSVOptions{Percent: true},
			rates: []float64{0.052, 0.0522},
		},
		{
			name:  "NO_HEADER",
			input: "2024-01-02,0.05\n2024-01-03,0.051\n",
			rates: []float64{0.05, 0.051},
		},
		{
			name:  "SEMICOLON_LAYOUT",
			input: "02/01/2024; 0.05\n03/01/2024; 0.06\n",
			opt:   CSVOptions{Comma: ';', Layout: "02/01/2006"},
			rates: []float64{0.05, 0.06},
		},
		{
			name:     "BAD_RATE",
			input:    "2024-01-02,abc\n",
			hasError: true,
		},
		{
			name:     "BAD_DATE",
			input:    "2024-01-02,0.05\nyesterday,0.05\n",
			hasError: true,
		},
		{
			name:     "UNSORTED",
			input:    "2024-01-03,0.05\n2024-01-02,0.05\n",
			hasError: true,
		},
		{
			name:     "ONE_COLUMN",
			input:    "2024-01-02\n",
			hasError: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			s, err := ReadCSV(strings.NewReader(test.input), test.opt)
			if test.hasError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := s.Rates()
			require.Len(t, got, len(test.rates))
			for i := range got {
				require.InDelta(t, test.rates[i], got[i], 1e-12)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	d := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	s, err := NewSeries(d, []float64{0.052, 0.0522})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))
	require.Equal(t, "date,rate\n2024-01-02,0.052\n2024-01-03,0.0522\n", buf.String())

	back, err := ReadCSV(&buf, CSVOptions{})
	require.NoError(t, err)
	require.Equal(t, s.Rates(), back.Rates())
	require.Equal(t, s.Dates(), back.Dates())
}

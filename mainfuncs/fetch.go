package mainfuncs

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/banachtech/vasicek/data"
)

type observer interface {
	Observations(ctx context.Context, seriesID string, from, to time.Time) (*data.Series, error)
}

type seriesInserter interface {
	InsertSeries(ctx context.Context, seriesID string, s *data.Series) (int, error)
}

// Fetch downloads a short rate series. It is written as CSV to out when out is
// not nil and upserted into store when store is not nil.
func Fetch(ctx context.Context, src observer, seriesID string, from, to time.Time, store seriesInserter, out io.Writer) error {
	s, err := src.Observations(ctx, seriesID, from, to)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", seriesID, err)
	}
	first, _ := s.At(0)
	last, _ := s.Last()
	log.Printf("fetched %d observations of %s from %s to %s", s.Len(), seriesID, first.Format(data.Layout), last.Format(data.Layout))

	if store != nil {
		n, err := store.InsertSeries(ctx, seriesID, s)
		if err != nil {
			return fmt.Errorf("store %s: %w", seriesID, err)
		}
		log.Printf("stored %d rows of %s", n, seriesID)
	}
	if out != nil {
		return data.WriteCSV(out, s)
	}
	return nil
}

type describer interface {
	Series(ctx context.Context, seriesID string) (data.SeriesInfo, error)
}

// Info writes the metadata of a series as JSON.
func Info(ctx context.Context, w io.Writer, src describer, seriesID string) error {
	info, err := src.Series(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("info %s: %w", seriesID, err)
	}
	return writeJSON(w, info)
}

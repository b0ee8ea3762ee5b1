package data

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Source yields short rate observations of a series.
type Source interface {
	Observations(ctx context.Context, seriesID string, from, to time.Time) (*Series, error)
}

// Store persists short rate observations.
type Store interface {
	GetLatestShortRateDate(ctx context.Context, seriesID string) (time.Time, error)
	InsertSeries(ctx context.Context, seriesID string, s *Series) (int, error)
}

// Update appends observations newer than the latest stored date of seriesID.
// A series with nothing stored yet is fetched from `from`. It returns the
// number of rows written, 0 when the store is already up to date.
func Update(ctx context.Context, src Source, store Store, seriesID string, from time.Time) (int, error) {
	latest, err := store.GetLatestShortRateDate(ctx, seriesID)
	switch {
	case err == nil:
		from = latest.AddDate(0, 0, 1)
	case errors.Is(err, sql.ErrNoRows):
	default:
		return 0, err
	}

	s, err := src.Observations(ctx, seriesID, from, time.Time{})
	if errors.Is(err, ErrNoObservations) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return store.InsertSeries(ctx, seriesID, s)
}

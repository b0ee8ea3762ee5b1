package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/banachtech/vasicek/data"
	_ "github.com/lib/pq"
)

var (
	minDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Connect opens and pings a database.
func Connect(ctx context.Context, driver, source string) (*sql.DB, error) {
	conn, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// GetSeries reads the stored rates of seriesID dated within [from, to]; zero
// bounds are open. It returns sql.ErrNoRows when nothing is stored.
func (store *SQLStore) GetSeries(ctx context.Context, seriesID string, from, to time.Time) (*data.Series, error) {
	if from.IsZero() {
		from = minDate
	}
	if to.IsZero() {
		to = maxDate
	}
	var rows []ShortRate
	err := store.execTx(ctx, func(q *Queries) error {
		var err error
		rows, err = q.ListShortRates(ctx, ListShortRatesParams{
			SeriesID: seriesID,
			FromDate: from,
			ToDate:   to,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}

	dates := make([]time.Time, len(rows))
	rates := make([]float64, len(rows))
	for i, r := range rows {
		dates[i] = r.Date
		rates[i] = r.Rate
	}
	return data.NewSeries(dates, rates)
}

// InsertSeries upserts every observation of s under seriesID in one
// transaction and returns the number of rows written.
func (store *SQLStore) InsertSeries(ctx context.Context, seriesID string, s *data.Series) (int, error) {
	n := 0
	err := store.execTx(ctx, func(q *Queries) error {
		for i := 0; i < s.Len(); i++ {
			d, r := s.At(i)
			_, err := q.UpsertShortRate(ctx, UpsertShortRateParams{
				SeriesID: seriesID,
				Date:     d,
				Rate:     r,
			})
			if err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

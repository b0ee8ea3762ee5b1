package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/banachtech/vasicek/data"
)

// Store provides all functions to execute db queries and transactions.
type Store interface {
	Querier
	GetSeries(ctx context.Context, seriesID string, from, to time.Time) (*data.Series, error)
	InsertSeries(ctx context.Context, seriesID string, s *data.Series) (int, error)
}

// SQLStore provides all functions to execute SQL queries and transactions.
type SQLStore struct {
	*Queries
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// execTx executes a function within a database transaction
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

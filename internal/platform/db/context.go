package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const (
	DBConnKey contextKey = "db_conn"
	DBTxKey   contextKey = "db_tx"
)

// ConnFromContext retrieves a request-scoped database connection from context.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(DBConnKey).(*pgxpool.Conn)
	return conn
}

// TxFromContext retrieves an in-flight transaction from context. Repositories
// check this first so that multi-step service operations run atomically.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(DBTxKey).(pgx.Tx)
	return tx
}

// WithPoolTx begins a transaction on the pool and returns a derived context
// carrying it. Repository calls made with that context join the transaction;
// the caller owns Commit and Rollback.
func WithPoolTx(ctx context.Context, pool *pgxpool.Pool) (pgx.Tx, context.Context, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, ctx, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, context.WithValue(ctx, DBTxKey, tx), nil
}

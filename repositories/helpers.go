package repositories

import (
	"context"
	"database/sql"
)

// SQLExecutor abstracts over *sql.DB and *sql.Tx so every repository method
// can run either standalone or inside a collection transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

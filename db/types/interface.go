package types

import (
	"context"
	"database/sql"
)

type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type DBer interface {
	Querier
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type SQLTxer interface {
	Querier
	Commit() error
	Rollback() error
}

type Txer interface {
	SQLTxer
}

// Migration is a sql script with a down part followed by an up part separated by "-- +migrate Up"
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

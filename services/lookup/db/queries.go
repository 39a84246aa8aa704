package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type LookupHistory struct {
	ID      int64
	Word    string
	Sources string
	Result  string
	Time    int64
}

const createLookup = `-- name: CreateLookup :exec
INSERT INTO lookup_history (word, sources, result, time)
VALUES (?, ?, ?, ?)
`

type CreateLookupParams struct {
	Word    string
	Sources string
	Result  string
	Time    int64
}

func (q *Queries) CreateLookup(ctx context.Context, arg CreateLookupParams) error {
	_, err := q.db.ExecContext(ctx, createLookup, arg.Word, arg.Sources, arg.Result, arg.Time)
	return err
}

const getRecentLookups = `-- name: GetRecentLookups :many
SELECT id, word, sources, result, time
FROM lookup_history
ORDER BY time DESC, id DESC
LIMIT ?
`

func (q *Queries) GetRecentLookups(ctx context.Context, limit int64) ([]LookupHistory, error) {
	rows, err := q.db.QueryContext(ctx, getRecentLookups, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LookupHistory
	for rows.Next() {
		var i LookupHistory
		if err := rows.Scan(&i.ID, &i.Word, &i.Sources, &i.Result, &i.Time); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Package postgres implements the domain repositories on PostgreSQL via pgx.
package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the part of *pgxpool.Pool and pgx.Tx the repositories use, so a
// helper can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (T, error) { return scan(r) })
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE substring pattern. Empty input
// stays empty so queries can skip the condition.
func containsPattern(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(q) + "%"
}

// textArray avoids sending NULL for a nil slice: `skills @> NULL` matches nothing.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

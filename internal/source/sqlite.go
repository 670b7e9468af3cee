// Package source builds table values from external data.
package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/funvibe/shellexpr/internal/value"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLite is a table source backed by a SQLite database file.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens the database at path (":memory:" for a private
// in-memory database) and checks that it is reachable.
func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLite, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// An in-memory database lives in a single connection.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	log.Debug("opened sqlite source", "path", path)
	return &SQLite{db: db, log: log}, nil
}

// DB exposes the underlying handle, e.g. for seeding fixtures.
func (s *SQLite) DB() *sql.DB { return s.db }

func (s *SQLite) Close() error { return s.db.Close() }

// Table runs query and returns its result as a table value.
func (s *SQLite) Table(ctx context.Context, query string, args ...any) (value.Table, error) {
	table, err := QueryTable(ctx, s.db, query, args...)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded table", "query", query, "rows", len(table))
	return table, nil
}

// QueryTable runs query on q. A single-column result becomes a table of
// scalars so it can be used directly as the right operand of "in"; wider
// results become a table of rows keyed by column name.
func QueryTable(ctx context.Context, q Querier, query string, args ...any) (value.Table, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	table := value.Table{}
	cells := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range cells {
		ptrs[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries := make([]value.Entry, len(columns))
		for i, col := range columns {
			v, err := value.FromNative(cells[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col, err)
			}
			entries[i] = value.Entry{Key: col, Value: v}
		}
		if len(entries) == 1 {
			table = append(table, entries[0].Value)
		} else {
			table = append(table, value.NewRow(entries...))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return table, nil
}

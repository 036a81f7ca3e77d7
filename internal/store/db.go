package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

const memoryPath = ":memory:"

// NewDB opens a DuckDB database. ":memory:" and "" open a private in-memory
// database that lives as long as the returned handle.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if dsn == memoryPath {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb at %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb at %q: %w", path, err)
	}
	return db, nil
}

// NewDuckDBStore wraps db in a Store backed by a DuckDBStore. Closing the
// Store closes db.
func NewDuckDBStore(db *sql.DB) *Store {
	return &Store{
		books: NewBookStore(NewQueryInterceptor(db)),
		close: db.Close,
	}
}

// ResetBooks removes every book left in a file database by a previous run.
// Ids restart at 1 with each process, so stale rows would collide.
func ResetBooks(ctx context.Context, db *sql.DB) error {
	query, args, err := sq.Delete(booksTable).ToSql()
	if err != nil {
		return err
	}
	if _, err := NewQueryInterceptor(db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to reset books: %w", err)
	}
	return nil
}

// QueryInterceptor logs every statement before handing it to the database.
type QueryInterceptor struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return QueryInterceptor{db: db, log: zap.S().Named("store")}
}

func (q QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	q.log.Debugw("query row", "sql", query, "args", args)
	return q.db.QueryRowContext(ctx, query, args...)
}

func (q QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q.log.Debugw("query", "sql", query, "args", args)
	return q.db.QueryContext(ctx, query, args...)
}

func (q QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q.log.Debugw("exec", "sql", query, "args", args)
	return q.db.ExecContext(ctx, query, args...)
}

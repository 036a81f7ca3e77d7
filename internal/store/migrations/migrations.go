// Package migrations creates the DuckDB schema used by the book store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var files embed.FS

const (
	createMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT current_timestamp
		)`

	queryMigrationApplied = `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`
	queryRecordMigration  = `INSERT INTO schema_migrations (version) VALUES (?)`
)

type migration struct {
	version int
	name    string
	sql     string
}

// Run applies every migration not yet recorded in schema_migrations, in
// version order. Running it twice is a no-op.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	all, err := load()
	if err != nil {
		return err
	}

	for _, m := range all {
		var applied int
		if err := db.QueryRowContext(ctx, queryMigrationApplied, m.version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.name, err)
		}
		if applied > 0 {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
		zap.S().Named("migrations").Infow("migration applied", "version", m.version, "name", m.name)
	}

	return nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.sql); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
	}
	if _, err := tx.ExecContext(ctx, queryRecordMigration, m.version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.name, err)
	}
	return tx.Commit()
}

func load() ([]migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}

	var all []migration
	for _, e := range entries {
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration %q has no version prefix", e.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %q has an invalid version: %w", e.Name(), err)
		}
		content, err := fs.ReadFile(files, "sql/"+e.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, migration{version: version, name: e.Name(), sql: string(content)})
	}

	slices.SortFunc(all, func(a, b migration) int { return a.version - b.version })
	return all, nil
}

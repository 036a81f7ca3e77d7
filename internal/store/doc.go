// Package store implements the data access layer of the book server.
//
// Two BookStore backends share one contract:
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                           BookStore                             │
//	│              ▼                                ▼                 │
//	│         MemoryStore                      DuckDBStore            │
//	│    map[int]Book + RWMutex         books table via squirrel      │
//	└─────────────────────────────────────────────────────────────────┘
//
// Both backends take ids from an in-process sequence that starts at 1 and
// never goes back, so the id of a deleted book is not handed out again.
//
// # Tables
//
// Created by the local migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  books             │  One row per book, genres as a JSON array   │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	NewDB(path)              → opens DuckDB, ":memory:" is private
//	migrations.Run(ctx, db)  → creates books
//	ResetBooks(ctx, db)      → drops rows left by a previous run
//	NewDuckDBStore(db)       → Store owning db
//
// The in-memory backend needs none of this:
//
//	store.NewStore(store.NewMemoryStore())
//
// # Snapshots
//
// Get and All return copies. Callers may mutate them, including the genre
// slices, without touching stored books.
//
// # QueryInterceptor
//
// Every statement of the DuckDB backend goes through a QueryInterceptor that
// logs it at debug level on the "store" logger.
package store

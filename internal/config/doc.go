// Package config defines the configuration structure of the book server.
//
// Defaults come from struct tags (creasty/defaults), values are bound from
// flags, BOOKS_* environment variables and an optional .env file by the run
// command through viper, and Validate checks the result with ozzo-validation.
//
// # Configuration Structure
//
//	Configuration
//	├── Server   - HTTP server and worker pool
//	├── Store    - storage backend
//	├── Filter   - filter semantics
//	└── Logging  - log format and the named loggers
//
// # Server Configuration
//
//	┌──────────────────────┬─────────┬──────────────────────────────────────┐
//	│ Key                  │ Default │ Description                          │
//	├──────────────────────┼─────────┼──────────────────────────────────────┤
//	│ server.mode          │ "dev"   │ "prod" puts gin in release mode      │
//	│ server.http-port     │ 8574    │ HTTP listen port                     │
//	│ server.num-workers   │ 4       │ Scheduler workers for book requests  │
//	└──────────────────────┴─────────┴──────────────────────────────────────┘
//
// # Store Configuration
//
//	┌──────────────────────┬────────────┬───────────────────────────────────┐
//	│ Key                  │ Default    │ Description                       │
//	├──────────────────────┼────────────┼───────────────────────────────────┤
//	│ store.backend        │ "memory"   │ "memory" or "duckdb"              │
//	│ store.path           │ ":memory:" │ DuckDB database path              │
//	└──────────────────────┴────────────┴───────────────────────────────────┘
//
// # Filter Configuration
//
// filter.corrected (default false) compares price-bigger-than against the
// price and keeps books sharing a requested genre. Left off, the historical
// behaviour applies: price-bigger-than is compared against the year and
// books sharing a requested genre are excluded.
//
// # Logging Configuration
//
//	┌───────────────────────┬───────────┬──────────────────────────────────┐
//	│ Key                   │ Default   │ Description                      │
//	├───────────────────────┼───────────┼──────────────────────────────────┤
//	│ logging.format        │ "console" │ "console" or "json"              │
//	│ logging.level         │ "info"    │ Level of the global logger       │
//	│ logging.request-level │ "INFO"    │ Initial level of request-logger  │
//	│ logging.books-level   │ "INFO"    │ Initial level of books-logger    │
//	│ logging.request-file  │ ""        │ Extra output file, request-logger│
//	│ logging.books-file    │ ""        │ Extra output file, books-logger  │
//	└───────────────────────┴───────────┴──────────────────────────────────┘
//
// # Debug Logging
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config

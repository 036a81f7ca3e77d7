// Package services implements the business logic layer of the book server.
//
// Services sit between the HTTP handlers and the store. They own validation,
// the filter mode and the locking that keeps the store consistent.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── BookService ──────► Store, Scheduler, Filter Engine, Observer
//	    └── LogLevelService ──► logging.Registry
//
// # BookService
//
// Every operation is submitted to the shared scheduler and awaited, so the
// number of operations running at once is bounded by the worker count. A
// single RWMutex per service spans each operation: create, price update and
// delete take the write lock, count and list read a snapshot under the read
// lock. Creating a book checks title uniqueness and inserts it inside the same
// critical section.
//
// Create rejects a candidate with the first failing check:
//
//	duplicate title (case-insensitive) ─► year outside [1940, 2100] ─► price <= 0
//
// UpdatePrice reports a missing book before an invalid price.
//
// Count and List compile the filter before reading the store, so a malformed
// genre list never touches a record. List sorts by title, byte-wise and
// case-sensitive, keeping the store order for equal titles.
//
// # Observer
//
// Observer is called when an operation starts and when it finishes. The
// finished call carries the elapsed time and either the error or a result:
//
//	create        models.Book (with its id)
//	count         int
//	list          []models.Book
//	get           models.Book
//	update_price  models.PriceChange
//	delete        models.Removal
//
// NoopObserver is the default. logging.BooksObserver writes these events to
// the books logger.
//
// # LogLevelService
//
// LogLevelService reads and changes the level of a named logger. Set checks
// the level name before the logger name, so an unknown level is reported even
// when the logger is also unknown.
package services

// Package handlers implements the HTTP API layer of the book server.
//
// Handlers delegate to the services layer and only deal with binding,
// response formatting and HTTP status codes.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                 v1.ServerInterfaceWrapper                       │
//	│  - Query parameter binding (oapi-codegen runtime)               │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Body decoding                                                │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  BookService │ LogLevelService                                  │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
//	┌────────┬───────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                              │
//	├────────┼───────────────┼──────────────────────────────────────────┤
//	│ GET    │ /books/health │ Returns the text OK                      │
//	│ POST   │ /book         │ Create a book, result is the new id      │
//	│ GET    │ /books/total  │ Count books matching the filters         │
//	│ GET    │ /books        │ List books matching the filters          │
//	│ GET    │ /book         │ Get one book by id                       │
//	│ PUT    │ /book         │ Update the price, result is old price    │
//	│ DELETE │ /book         │ Delete, result is the remaining count    │
//	│ GET    │ /logs/level   │ Level of a logger as plain text          │
//	│ PUT    │ /logs/level   │ Change the level of a logger             │
//	└────────┴───────────────┴──────────────────────────────────────────┘
//
// # Book responses
//
// Book endpoints answer with an envelope:
//
//	{ "result": 1, "errorMessage": "" }
//	{ "result": null, "errorMessage": "Error: no such Book with id 7" }
//
// Filters for /books and /books/total:
//
//	author             case-insensitive equality
//	price-bigger-than  inclusive lower bound
//	price-less-than    inclusive upper bound on price
//	year-bigger-than   inclusive lower bound on year
//	year-less-than     inclusive upper bound on year
//	genres             comma separated, upper case only
//
// Errors:
//   - 400 Bad Request: malformed body, non-integer parameter, genres not in upper case
//   - 404 Not Found: unknown book id
//   - 409 Conflict: duplicate title, year out of range, non positive price
//
// # Log level responses
//
// Log level endpoints answer with plain text: the level name on success,
// "No logger found" or "No level found" with 404 otherwise.
package handlers

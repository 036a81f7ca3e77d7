/*
Package e2e holds the end-to-end tests of the book server.

# Package Structure

	test/e2e/
	├── e2e_suite_test.go  Flags, InfraManager selection, Ginkgo runner
	├── books_test.go      Ginkgo specs driving the server through pkg/client
	├── doc.go             This file
	└── infra/             Server lifecycle
	    ├── infra.go       InfraManager interface + ServerConfig
	    ├── process.go     ProcessInfraManager (server in the test process)
	    └── external.go    ExternalInfraManager (no-op, server managed elsewhere)

# InfraManager

	type InfraManager interface {
	    StartServer(cfg) (url, error)
	    StopServer()
	}

Two implementations:
  - ProcessInfraManager runs "book-server run" on a free port (default).
  - ExternalInfraManager talks to the server given by -server-url.

# Running

	go test ./test/e2e/...
	go test ./test/e2e/... -args -server-url=http://localhost:8574
*/
package e2e

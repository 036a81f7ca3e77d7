package infra

// InfraManager abstracts the lifecycle of the book server under test.
// Process-based: runs the server inside the test process.
// External: no-op, the server is managed outside of the tests.
type InfraManager interface {
	StartServer(cfg ServerConfig) (string, error)
	StopServer() error
}

// ServerConfig holds the settings of one server instance.
type ServerConfig struct {
	StoreBackend    string // "memory" or "duckdb"
	CorrectedFilter bool
	NumWorkers      int
}

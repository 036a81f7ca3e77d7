package infra

// ExternalInfraManager implements InfraManager for a server started outside
// of the tests. ServerConfig is ignored.
type ExternalInfraManager struct {
	url string
}

func NewExternalInfraManager(url string) *ExternalInfraManager {
	return &ExternalInfraManager{url: url}
}

func (e *ExternalInfraManager) StartServer(_ ServerConfig) (string, error) {
	return e.url, nil
}

func (e *ExternalInfraManager) StopServer() error { return nil }

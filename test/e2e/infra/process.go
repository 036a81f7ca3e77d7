package infra

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kaplat/book-server/cmd"
)

// ProcessInfraManager runs "book-server run" in a goroutine of the test
// process on a free port.
type ProcessInfraManager struct {
	cancel context.CancelFunc
	done   chan error
}

func NewProcessInfraManager() *ProcessInfraManager {
	return &ProcessInfraManager{}
}

func (p *ProcessInfraManager) StartServer(cfg ServerConfig) (string, error) {
	if p.cancel != nil {
		return "", errors.New("server already started")
	}

	port, err := freePort()
	if err != nil {
		return "", err
	}

	args := []string{
		"run",
		"--http-port", strconv.Itoa(port),
		"--mode", "prod",
		"--env-file", "",
		"--request-level", "ERROR",
		"--books-level", "ERROR",
	}
	if cfg.StoreBackend != "" {
		args = append(args, "--store-backend", cfg.StoreBackend)
	}
	if cfg.CorrectedFilter {
		args = append(args, "--corrected-filter")
	}
	if cfg.NumWorkers > 0 {
		args = append(args, "--num-workers", strconv.Itoa(cfg.NumWorkers))
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan error, 1)

	root := cmd.NewRootCommand()
	root.SetArgs(args)
	go func() {
		p.done <- root.ExecuteContext(ctx)
	}()

	zap.S().Infow("book server started", "port", port, "args", args)
	return fmt.Sprintf("http://127.0.0.1:%d", port), nil
}

func (p *ProcessInfraManager) StopServer() error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	p.cancel = nil

	select {
	case err := <-p.done:
		return err
	case <-time.After(15 * time.Second):
		return errors.New("timed out waiting for the server to stop")
	}
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find a free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

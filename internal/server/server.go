package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/config"
	"github.com/kaplat/book-server/internal/server/middlewares"
)

type Server struct {
	srv           *http.Server
	requestLogger *middlewares.RequestLogger
}

// NewServer builds the gin engine and lets registerHandlerFn add the routes.
// requestLog receives one entry per request.
func NewServer(cfg *config.Configuration, requestLog *zap.Logger, registerHandlerFn func(router gin.IRouter)) (*Server, error) {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid http port %d", cfg.Server.HTTPPort)
	}

	if cfg.Server.ServerMode == config.ServerModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	requestLogger := middlewares.NewRequestLogger(requestLog)

	engine := gin.New()
	engine.Use(
		requestLogger.Handler(),
		ginzap.RecoveryWithZap(zap.L().Named("http"), true),
	)

	registerHandlerFn(engine)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.NewErrorEnvelope(fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path)))
	})

	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: engine,
		},
		requestLogger: requestLogger,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// RequestCount returns the number of requests handled since the server was built.
func (s *Server) RequestCount() int64 {
	return s.requestLogger.Count()
}

// Start blocks until the server stops. Request contexts derive from ctx. A
// graceful Stop is not reported as an error.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("http").Infow("http server listening", "address", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("http").Info("stopping http server")
	return s.srv.Shutdown(ctx)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/config"
	"github.com/kaplat/book-server/internal/handlers"
	"github.com/kaplat/book-server/internal/logging"
	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/server"
	"github.com/kaplat/book-server/internal/services"
	"github.com/kaplat/book-server/internal/store"
	"github.com/kaplat/book-server/internal/store/migrations"
	"github.com/kaplat/book-server/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand() *cobra.Command {
	v := viper.New()
	defaults, _ := config.NewConfigurationWithDefaults()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the book server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(v, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	registerConfigFlags(cmd.Flags(), defaults)

	return cmd
}

func run(ctx context.Context, cfg *config.Configuration) error {
	logger, err := newGlobalLogger(cfg.Logging)
	if err != nil {
		return err
	}
	undo := zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
		undo()
	}()

	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())

	registry, err := logging.NewRegistry(cfg.Logging.Format,
		logging.LoggerConfig{
			Name:       models.RequestLoggerName,
			Level:      models.LogLevel(cfg.Logging.RequestLevel),
			OutputPath: cfg.Logging.RequestFile,
		},
		logging.LoggerConfig{
			Name:       models.BooksLoggerName,
			Level:      models.LogLevel(cfg.Logging.BooksLevel),
			OutputPath: cfg.Logging.BooksFile,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to build loggers: %w", err)
	}
	defer registry.Close()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := newStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			zap.S().Errorw("failed to close store", "error", err)
		}
	}()

	sched := scheduler.NewScheduler(cfg.Server.NumWorkers)
	defer sched.Close()

	bookSrv := services.NewBookService(st, sched).
		WithFilterMode(cfg.FilterMode()).
		WithObserver(logging.NewBooksObserver(registry.Logger(models.BooksLoggerName)))
	levelSrv := services.NewLogLevelService(registry)
	h := handlers.New(bookSrv, levelSrv)

	srv, err := server.NewServer(cfg, registry.Logger(models.RequestLoggerName), func(router gin.IRouter) {
		v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.S().Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return <-errCh
}

func newGlobalLogger(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.Format == config.LogFormatJSON {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func newStore(ctx context.Context, cfg config.Store) (*store.Store, error) {
	if cfg.Backend != config.StoreBackendDuckDB {
		return store.NewStore(store.NewMemoryStore()), nil
	}

	db, err := store.NewDB(cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.ResetBooks(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store.NewDuckDBStore(db), nil
}

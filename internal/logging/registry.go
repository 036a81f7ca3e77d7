package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kaplat/book-server/internal/models"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LoggerConfig describes one named logger. An empty OutputPath writes to stderr only.
type LoggerConfig struct {
	Name       string
	Level      models.LogLevel
	OutputPath string
}

type namedLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  models.LogLevel
	close  func()
}

// Registry holds the loggers whose level can be changed at runtime.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*namedLogger
}

func NewRegistry(format string, loggers ...LoggerConfig) (*Registry, error) {
	enc, err := newEncoder(format)
	if err != nil {
		return nil, err
	}

	r := &Registry{loggers: make(map[string]*namedLogger, len(loggers))}
	for _, cfg := range loggers {
		if _, ok := r.loggers[cfg.Name]; ok {
			r.Close()
			return nil, fmt.Errorf("logger %q registered twice", cfg.Name)
		}

		paths := []string{"stderr"}
		if cfg.OutputPath != "" {
			paths = append(paths, cfg.OutputPath)
		}
		sink, closeSink, err := zap.Open(paths...)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to open output for logger %q: %w", cfg.Name, err)
		}

		level := cfg.Level
		if _, ok := models.ParseLogLevel(string(level)); !ok {
			level = models.LogLevelInfo
		}
		atom := zap.NewAtomicLevelAt(ZapLevel(level))

		core := zapcore.NewCore(enc.Clone(), sink, atom)
		r.loggers[cfg.Name] = &namedLogger{
			logger: zap.New(core, zap.AddCaller()).Named(cfg.Name),
			atom:   atom,
			level:  level,
			close:  closeSink,
		}
	}

	return r, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = encodeLevel
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatConsole, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = encodeLevel
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Logger returns the named logger, or a no-op logger when name is unknown.
func (r *Registry) Logger(name string) *zap.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.loggers[name]; ok {
		return l.logger
	}
	return zap.NewNop()
}

// Level returns the level name last set on the logger.
func (r *Registry) Level(name string) (models.LogLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loggers[name]
	if !ok {
		return "", srvErrors.NewLoggerNotFoundError()
	}
	return l.level, nil
}

func (r *Registry) SetLevel(name string, level models.LogLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[name]
	if !ok {
		return srvErrors.NewLoggerNotFoundError()
	}
	l.atom.SetLevel(ZapLevel(level))
	l.level = level
	return nil
}

// Close flushes every logger and releases its output files.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.loggers {
		_ = l.logger.Sync()
		l.close()
	}
}

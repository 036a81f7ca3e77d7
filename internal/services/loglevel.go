package services

import (
	"github.com/kaplat/book-server/internal/models"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

type LevelRegistry interface {
	Level(name string) (models.LogLevel, error)
	SetLevel(name string, level models.LogLevel) error
}

// LogLevelService inspects and changes logger levels at runtime.
type LogLevelService struct {
	registry LevelRegistry
}

func NewLogLevelService(r LevelRegistry) *LogLevelService {
	return &LogLevelService{registry: r}
}

func (s *LogLevelService) Get(loggerName string) (models.LogLevel, error) {
	return s.registry.Level(loggerName)
}

// Set changes the level of loggerName. The level name is checked before the
// logger, so an unknown level wins over an unknown logger.
func (s *LogLevelService) Set(loggerName, level string) (models.LogLevel, error) {
	l, ok := models.ParseLogLevel(level)
	if !ok {
		return "", srvErrors.NewLogLevelNotFoundError()
	}
	if err := s.registry.SetLevel(loggerName, l); err != nil {
		return "", err
	}
	return s.registry.Level(loggerName)
}

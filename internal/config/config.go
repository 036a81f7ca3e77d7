package config

import (
	"github.com/creasty/defaults"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kaplat/book-server/internal/models"
)

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	StoreBackendMemory = "memory"
	StoreBackendDuckDB = "duckdb"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Configuration struct {
	Server  Server  `mapstructure:"server"`
	Store   Store   `mapstructure:"store"`
	Filter  Filter  `mapstructure:"filter"`
	Logging Logging `mapstructure:"logging"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" default:"dev"`
	HTTPPort   int    `mapstructure:"http-port" default:"8574"`
	NumWorkers int    `mapstructure:"num-workers" default:"4"`
}

type Store struct {
	Backend string `mapstructure:"backend" default:"memory"`
	// Path is the DuckDB database file, ":memory:" keeps it in memory.
	Path string `mapstructure:"path" default:":memory:"`
}

type Filter struct {
	// Corrected switches to fixed price-bigger-than and genres semantics.
	Corrected bool `mapstructure:"corrected" default:"false"`
}

type Logging struct {
	Format       string `mapstructure:"format" default:"console"`
	Level        string `mapstructure:"level" default:"info"`
	RequestLevel string `mapstructure:"request-level" default:"INFO"`
	BooksLevel   string `mapstructure:"books-level" default:"INFO"`
	RequestFile  string `mapstructure:"request-file"`
	BooksFile    string `mapstructure:"books-file"`
}

func NewConfigurationWithDefaults() (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Configuration) FilterMode() models.FilterMode {
	if c.Filter.Corrected {
		return models.FilterModeCorrected
	}
	return models.FilterModeLegacy
}

func (c Configuration) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Store),
		validation.Field(&c.Logging),
	)
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ServerMode, validation.Required, validation.In(ServerModeDev, ServerModeProd)),
		validation.Field(&s.HTTPPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.NumWorkers, validation.Required, validation.Min(1)),
	)
}

func (s Store) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Backend, validation.Required, validation.In(StoreBackendMemory, StoreBackendDuckDB)),
		validation.Field(&s.Path, validation.When(s.Backend == StoreBackendDuckDB, validation.Required)),
	)
}

func (l Logging) Validate() error {
	levels := make([]any, 0, len(models.AvailableLogLevels))
	for _, lvl := range models.AvailableLogLevels {
		levels = append(levels, string(lvl))
	}

	return validation.ValidateStruct(&l,
		validation.Field(&l.Format, validation.Required, validation.In(LogFormatConsole, LogFormatJSON)),
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.RequestLevel, validation.Required, validation.In(levels...)),
		validation.Field(&l.BooksLevel, validation.Required, validation.In(levels...)),
	)
}

// DebugMap flattens the configuration for a startup log line.
func (c Configuration) DebugMap() map[string]any {
	return map[string]any{
		"server.mode":           c.Server.ServerMode,
		"server.http-port":      c.Server.HTTPPort,
		"server.num-workers":    c.Server.NumWorkers,
		"store.backend":         c.Store.Backend,
		"store.path":            c.Store.Path,
		"filter.corrected":      c.Filter.Corrected,
		"logging.format":        c.Logging.Format,
		"logging.level":         c.Logging.Level,
		"logging.request-level": c.Logging.RequestLevel,
		"logging.books-level":   c.Logging.BooksLevel,
		"logging.request-file":  c.Logging.RequestFile,
		"logging.books-file":    c.Logging.BooksFile,
	}
}

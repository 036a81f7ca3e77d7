package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kaplat/book-server/internal/config"
)

const envPrefix = "BOOKS"

// flagKeys maps run flags to configuration keys.
var flagKeys = map[string]string{
	"mode":             "server.mode",
	"http-port":        "server.http-port",
	"num-workers":      "server.num-workers",
	"store-backend":    "store.backend",
	"store-path":       "store.path",
	"corrected-filter": "filter.corrected",
	"log-format":       "logging.format",
	"log-level":        "logging.level",
	"request-level":    "logging.request-level",
	"books-level":      "logging.books-level",
	"request-log-file": "logging.request-file",
	"books-log-file":   "logging.books-file",
}

func registerConfigFlags(flags *pflag.FlagSet, defaults *config.Configuration) {
	flags.String("mode", defaults.Server.ServerMode, "Server mode: dev or prod")
	flags.Int("http-port", defaults.Server.HTTPPort, "HTTP listen port")
	flags.Int("num-workers", defaults.Server.NumWorkers, "Number of workers running book operations")
	flags.String("store-backend", defaults.Store.Backend, "Storage backend: memory or duckdb")
	flags.String("store-path", defaults.Store.Path, "DuckDB database path")
	flags.Bool("corrected-filter", defaults.Filter.Corrected, "Use corrected price-bigger-than and genres semantics")
	flags.String("log-format", defaults.Logging.Format, "Log format: console or json")
	flags.String("log-level", defaults.Logging.Level, "Level of the global logger")
	flags.String("request-level", defaults.Logging.RequestLevel, "Initial level of request-logger")
	flags.String("books-level", defaults.Logging.BooksLevel, "Initial level of books-logger")
	flags.String("request-log-file", defaults.Logging.RequestFile, "Extra output file for request-logger")
	flags.String("books-log-file", defaults.Logging.BooksFile, "Extra output file for books-logger")
	flags.String("env-file", ".env", "Optional file with BOOKS_* variables")
}

// loadConfiguration merges, by precedence, flags, BOOKS_* environment
// variables, the env file and the defaults, then validates the result.
func loadConfiguration(v *viper.Viper, flags *pflag.FlagSet) (*config.Configuration, error) {
	cfg, err := config.NewConfigurationWithDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to set configuration defaults: %w", err)
	}

	envFile, err := flags.GetString("env-file")
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		// godotenv never overrides variables already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	for key, value := range cfg.DebugMap() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

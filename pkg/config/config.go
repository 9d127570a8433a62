package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultEnvFile = "./configs/.env"
	envFileVar     = "JOURNAL_ENV_FILE"
)

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

type Config struct {
	APIAddress     string        `env:"API_ADDRESS" envDefault:":8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"journal"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"journal"`
	MigrationsDir    string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`

	// Empty disables the catalog cache
	RedisURL        string        `env:"REDIS_URL"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	CaseSensitiveSearch bool `env:"CASE_SENSITIVE_SEARCH" envDefault:"false"`
}

// New loads the configuration once per process. Values from the environment
// win over the ones in the env file, which may be absent.
func New() (*Config, error) {
	once.Do(func() {
		instance, loadErr = Load()
	})
	return instance, loadErr
}

// Load reads the env file and parses the environment without caching.
func Load() (*Config, error) {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file %s: %w", path, err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing envs: %w", err)
	}
	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

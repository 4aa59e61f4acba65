package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration. The deployment registry
// (projects, wikis, settings) lives in the YAML file at RegistryFile.
type Server struct {
	Addr         string `env:"INCUBATOR_ADDR" envDefault:":8080"`
	RegistryFile string `env:"INCUBATOR_REGISTRY_FILE" envDefault:"config/incubator.yaml"`
	AdminToken   string `env:"INCUBATOR_ADMIN_TOKEN"`
	// PagesFile seeds the in-memory page index when no database is configured.
	PagesFile       string        `env:"INCUBATOR_PAGES_FILE"`
	ShutdownTimeout time.Duration `env:"INCUBATOR_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	HTTP     HTTPConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pages    PagesConfig
}

// HTTPConfig holds the HTTP server timeouts.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `env:"INCUBATOR_HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"INCUBATOR_HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"INCUBATOR_HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"INCUBATOR_HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `env:"INCUBATOR_LOG_LEVEL" envDefault:"info"`
	Format string `env:"INCUBATOR_LOG_FORMAT" envDefault:"json"`
}

// DatabaseConfig points at the wiki database holding the page table.
// An empty URL selects the in-memory page index.
type DatabaseConfig struct {
	URL             string        `env:"INCUBATOR_DATABASE_URL"`
	PageTable       string        `env:"INCUBATOR_PAGE_TABLE" envDefault:"page"`
	MaxOpenConns    int           `env:"INCUBATOR_DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"INCUBATOR_DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"INCUBATOR_DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the shared page cache. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"INCUBATOR_REDIS_URL"`
	PoolSize     int           `env:"INCUBATOR_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"INCUBATOR_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"INCUBATOR_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"INCUBATOR_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"INCUBATOR_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	CacheTTL     time.Duration `env:"INCUBATOR_REDIS_CACHE_TTL" envDefault:"5m"`
}

// PagesConfig tunes the page existence lookups.
type PagesConfig struct {
	CacheSize               int           `env:"INCUBATOR_PAGE_CACHE_SIZE" envDefault:"4096"`
	CacheTTL                time.Duration `env:"INCUBATOR_PAGE_CACHE_TTL" envDefault:"30s"`
	BreakerFailureThreshold uint32        `env:"INCUBATOR_BREAKER_FAILURES" envDefault:"5"`
	BreakerTimeout          time.Duration `env:"INCUBATOR_BREAKER_TIMEOUT" envDefault:"30s"`
	BreakerInterval         time.Duration `env:"INCUBATOR_BREAKER_INTERVAL" envDefault:"10s"`
	BreakerMaxRequests      uint32        `env:"INCUBATOR_BREAKER_MAX_REQUESTS" envDefault:"3"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Addr == "" {
		return Server{}, fmt.Errorf("INCUBATOR_ADDR must not be empty")
	}
	return cfg, nil
}

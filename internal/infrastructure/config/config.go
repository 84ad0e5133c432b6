package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/iho/gowallet/internal/domain"
)

// Config holds all application configuration. An empty DATABASE_URL selects
// the in-memory event store; an empty REDIS_URL disables the view cache and
// idempotency.
type Config struct {
	// Database
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:""`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"25"`
	DatabaseMinConns int           `env:"DATABASE_MIN_CONNS" envDefault:"5"`
	DatabaseTimeout  time.Duration `env:"DATABASE_TIMEOUT"   envDefault:"30s"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH"    envDefault:"migrations"`

	// Redis
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Wallet rules
	MaxDailyDebits int     `env:"MAX_DAILY_DEBITS" envDefault:"3"`
	DebitFeeRate   float64 `env:"DEBIT_FEE_RATE"   envDefault:"0.005"`

	// Caching
	ViewCacheTTL   time.Duration `env:"VIEW_CACHE_TTL"  envDefault:"5m"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Rate limiting
	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS"     envDefault:"50"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST"   envDefault:"100"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DebitPolicy returns the configured wallet debit policy.
func (c *Config) DebitPolicy() domain.DebitPolicy {
	return domain.DebitPolicy{
		MaxDailyDebits: c.MaxDailyDebits,
		FeeRate:        c.DebitFeeRate,
	}
}

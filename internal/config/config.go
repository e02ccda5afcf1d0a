package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME" envDefault:"schedule-manager"`
	Env                   string `env:"APP_ENV" envDefault:"development"`
	Host                  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port                  string `env:"APP_PORT" envDefault:"3000"`
	Version               string `env:"APP_VERSION" envDefault:"dev"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"POSTGRES_DSN,required,notEmpty"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	RunMigrations  bool   `env:"POSTGRES_RUN_MIGRATIONS" envDefault:"true"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS" envDefault:"30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS" envDefault:"300"`
	ConnectRetries uint64 `env:"POSTGRES_CONNECT_RETRIES" envDefault:"5"`
}

// RedisConfig holds Redis connection values. An empty Addr disables the event cache.
type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR"`
	Password        string `env:"REDIS_PASSWORD"`
	DB              int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"60"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// AuthConfig defines authentication parameters. All of them are required.
type AuthConfig struct {
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	ExpiresIn  string `env:"JWT_EXPIRES_IN,required,notEmpty"`
	BcryptCost int    `env:"BCRYPT_SALT_ROUNDS,required,notEmpty"`

	// TokenTTL is ExpiresIn resolved by Load.
	TokenTTL time.Duration `env:"-"`
}

// Load reads configuration from the environment (and a .env file when present).
// Missing or malformed required values are returned as errors; callers treat them as fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	ttl, err := ParseLifetime(cfg.Auth.ExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	cfg.Auth.TokenTTL = ttl

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabaseConfig is the subset of configuration needed to run migrations.
type DatabaseConfig struct {
	App      AppConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
}

// LoadDatabase reads only the database and logging settings, so migrations can run
// without auth secrets.
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	var cfg DatabaseConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("invalid BCRYPT_SALT_ROUNDS: %d is outside %d..%d",
			c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Redis.CacheTTLSeconds <= 0 {
		errs = append(errs, fmt.Errorf("invalid CACHE_TTL_SECONDS: %d", c.Redis.CacheTTLSeconds))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsProduction reports whether error details must be hidden from clients.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached events live.
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

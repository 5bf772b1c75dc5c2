package config

import (
	"fmt"
	"strings"
	"time"

	config "github.com/0xsj/overwatch-pkg/config"
)

// Config holds all configuration for the finance service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Token    TokenConfig
	Cache    CacheConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host              string        `env:"DATABASE_HOST" default:"localhost"`
	Port              int           `env:"DATABASE_PORT" default:"5432"`
	User              string        `env:"DATABASE_USER" default:"finance"`
	Password          string        `env:"DATABASE_PASSWORD" default:"finance" sensitive:"true"`
	Database          string        `env:"DATABASE_NAME" default:"overwatch_finance"`
	SSLMode           string        `env:"DATABASE_SSL_MODE" default:"disable"`
	MaxConns          int           `env:"DATABASE_MAX_CONNS" default:"25"`
	MinConns          int           `env:"DATABASE_MIN_CONNS" default:"5"`
	MaxConnLifetime   time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime   time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" default:"30m"`
	HealthCheckPeriod time.Duration `env:"DATABASE_HEALTH_CHECK_PERIOD" default:"1m"`
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host         string        `env:"REDIS_HOST" default:"localhost"`
	Port         int           `env:"REDIS_PORT" default:"6379"`
	Password     string        `env:"REDIS_PASSWORD" default:"" sensitive:"true"`
	DB           int           `env:"REDIS_DB" default:"0"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" default:"5"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL           string        `env:"NATS_URL" default:"nats://localhost:4222"`
	SubjectPrefix string        `env:"NATS_SUBJECT_PREFIX" default:"overwatch"`
	MaxReconnects int           `env:"NATS_MAX_RECONNECTS" default:"10"`
	ReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" default:"2s"`
}

// TokenConfig holds JWT token configuration.
type TokenConfig struct {
	Issuer              string        `env:"TOKEN_ISSUER" default:"overwatch-finance"`
	Audience            string        `env:"TOKEN_AUDIENCE" default:"finance"`
	AccessTokenDuration time.Duration `env:"TOKEN_ACCESS_DURATION" default:"1h"`
	SigningAlgorithm    string        `env:"TOKEN_SIGNING_ALGORITHM" default:"HS256"`
	SigningKey          string        `env:"TOKEN_SIGNING_KEY" required:"true" sensitive:"true"`
}

// CacheConfig holds projection cache configuration.
type CacheConfig struct {
	// DefaultTTL is deliberately long: the cache is a write-through
	// mirror invalidated on writes, not an expiring snapshot.
	DefaultTTL  time.Duration `env:"CACHE_DEFAULT_TTL" default:"8784h"`
	DenylistTTL time.Duration `env:"CACHE_DENYLIST_TTL" default:"1h"`
}

// AuthConfig holds auth gate configuration.
type AuthConfig struct {
	PublicPaths string `env:"AUTH_PUBLIC_PATHS" default:"/,/register,/login,/healthz"`
	AdminPaths  string `env:"AUTH_ADMIN_PATHS" default:"/users"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.WithPrefix("PFT_")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads configuration and panics on error.
func MustLoad() *Config {
	cfg := &Config{}
	config.MustLoad(cfg, config.WithPrefix("PFT_"))
	return cfg
}

// Address returns the HTTP server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// URL returns the PostgreSQL connection URL.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// Address returns the Redis address.
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PublicPathList splits the configured public paths.
func (c *AuthConfig) PublicPathList() []string {
	return splitPaths(c.PublicPaths)
}

// AdminPathList splits the configured admin paths.
func (c *AuthConfig) AdminPathList() []string {
	return splitPaths(c.AdminPaths)
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

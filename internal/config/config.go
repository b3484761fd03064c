// Package config provides configuration management for the application. A
// config.toml file supplies the base values and environment variables
// override individual fields, so containerised deployments can run without a
// file at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Admin   AdminConfig   `toml:"admin"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string `toml:"port"`
	ReadTimeoutSeconds int    `toml:"read_timeout_seconds"`
	IdleTimeoutSeconds int    `toml:"idle_timeout_seconds"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Backend is one of "memory", "redis" or "postgres".
	Backend  string         `toml:"backend"`
	Redis    RedisConfig    `toml:"redis"`
	Postgres PostgresConfig `toml:"postgres"`
}

// RedisConfig holds Redis/Valkey connection settings.
type RedisConfig struct {
	// URI is prioritized if provided, otherwise individual parameters are used.
	URI       string `toml:"uri"`
	Host      string `toml:"host"`
	Port      string `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// AdminConfig guards the management pages. PasswordHash is a bcrypt hash;
// when either field is empty the admin routes answer 503.
type AdminConfig struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load builds the configuration from defaults, an optional TOML file and
// environment overrides, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeoutSeconds: 15,
			IdleTimeoutSeconds: 60,
		},
		Storage: StorageConfig{
			Backend: "memory",
			Redis: RedisConfig{
				Host:      "localhost",
				Port:      "6379",
				KeyPrefix: "roomboard:",
			},
			Postgres: PostgresConfig{
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)

	cfg.Storage.Backend = getEnv("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.Redis.URI = getEnv("REDIS_URI", cfg.Storage.Redis.URI)
	cfg.Storage.Redis.Host = getEnv("REDIS_HOST", cfg.Storage.Redis.Host)
	cfg.Storage.Redis.Port = getEnv("REDIS_PORT", cfg.Storage.Redis.Port)
	cfg.Storage.Redis.Username = getEnv("REDIS_USERNAME", cfg.Storage.Redis.Username)
	cfg.Storage.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Storage.Redis.Password)
	cfg.Storage.Redis.DB = getEnvInt("REDIS_DB", cfg.Storage.Redis.DB)
	cfg.Storage.Redis.KeyPrefix = getEnv("REDIS_KEY_PREFIX", cfg.Storage.Redis.KeyPrefix)
	cfg.Storage.Postgres.DSN = getEnv("POSTGRES_DSN", cfg.Storage.Postgres.DSN)

	cfg.Admin.Username = getEnv("ADMIN_USERNAME", cfg.Admin.Username)
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.Admin.PasswordHash)

	cfg.Metrics.Enabled = getEnvBool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Path = getEnv("METRICS_PATH", cfg.Metrics.Path)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvInt retrieves an integer environment variable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

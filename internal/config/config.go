// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	AIService  AIServiceConfig
	Redis      RedisConfig
	Migrations MigrationsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,min=1,max=65535"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	DBName   string `validate:"required"`
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int `validate:"min=1,max=65535"`
	RateLimitPerMinute int `validate:"min=1"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1"`
}

// AIServiceConfig holds settings of the upstream content generation service
type AIServiceConfig struct {
	URL     string        `validate:"omitempty,url"`
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
}

// RedisConfig holds settings of the optional read cache. An empty URL disables caching.
type RedisConfig struct {
	URL string        `validate:"omitempty,url"`
	TTL time.Duration `validate:"gt=0"`
}

// MigrationsConfig holds database migration settings
type MigrationsConfig struct {
	Path string `validate:"required"`
}

var validate = validator.New()

// Load reads configuration from environment variables. A .env file is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// Database configuration
	cfg.Database.Host = os.Getenv("DB_HOST")
	if cfg.Database.Port, err = intEnv("DB_PORT", 0); err != nil {
		return nil, err
	}
	cfg.Database.User = os.Getenv("DB_USER")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.DBName = os.Getenv("DB_NAME")

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// AI service configuration
	cfg.AIService.URL = strings.TrimRight(os.Getenv("AI_SERVICE_URL"), "/")
	cfg.AIService.APIKey = os.Getenv("AI_SERVICE_API_KEY")
	if cfg.AIService.Timeout, err = durationEnv("AI_SERVICE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.URL = os.Getenv("REDIS_URL")
	if cfg.Redis.TTL, err = durationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	cfg.Migrations.Path = stringEnv("MIGRATIONS_PATH", "file://migrations")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// parseOrigins splits a comma-separated origin list. An empty list allows all origins.
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "turkish")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "turkishstudent")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
		validate      func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
				assert.Equal(t, 30*time.Second, cfg.AIService.Timeout)
				assert.Equal(t, "file://migrations", cfg.Migrations.Path)
				assert.Empty(t, cfg.AIService.URL)
				assert.Empty(t, cfg.Redis.URL)
				assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"SERVER_PORT":           "9090",
				"LOG_LEVEL":             "debug",
				"CORS_ALLOWED_ORIGINS":  "https://a.example.com, ,https://b.example.com",
				"AI_SERVICE_URL":        "http://ai.internal:8000/",
				"AI_SERVICE_API_KEY":    "key",
				"AI_SERVICE_TIMEOUT":    "5s",
				"RATE_LIMIT_PER_MINUTE": "20",
				"REDIS_URL":             "redis://localhost:6379/1",
				"CACHE_TTL":             "1m",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, ":9090", cfg.Addr())
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
				assert.Equal(t, "http://ai.internal:8000", cfg.AIService.URL)
				assert.Equal(t, "key", cfg.AIService.APIKey)
				assert.Equal(t, 5*time.Second, cfg.AIService.Timeout)
				assert.Equal(t, 20, cfg.Server.RateLimitPerMinute)
				assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
				assert.Equal(t, time.Minute, cfg.Redis.TTL)
			},
		},
		{
			name:          "invalid port",
			env:           map[string]string{"SERVER_PORT": "http"},
			expectedError: "invalid SERVER_PORT",
		},
		{
			name:          "invalid timeout",
			env:           map[string]string{"AI_SERVICE_TIMEOUT": "soon"},
			expectedError: "invalid AI_SERVICE_TIMEOUT",
		},
		{
			name:          "missing database host",
			env:           map[string]string{"DB_HOST": ""},
			expectedError: "Database.Host failed on required",
		},
		{
			name:          "unknown log level",
			env:           map[string]string{"LOG_LEVEL": "verbose"},
			expectedError: "Logging.Level failed on oneof",
		},
		{
			name:          "invalid ai service url",
			env:           map[string]string{"AI_SERVICE_URL": "not a url"},
			expectedError: "AIService.URL failed on url",
		},
		{
			name:          "non-positive cache ttl",
			env:           map[string]string{"CACHE_TTL": "0s"},
			expectedError: "Redis.TTL failed on gt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setDatabaseEnv(t)
			for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "AI_SERVICE_URL",
				"AI_SERVICE_API_KEY", "AI_SERVICE_TIMEOUT", "RATE_LIMIT_PER_MINUTE", "MIGRATIONS_PATH", "REDIS_URL", "CACHE_TTL"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     3307,
		User:     "u",
		Password: "p",
		DBName:   "n",
	}}

	assert.Equal(t, "u:p@tcp(db:3307)/n?parseTime=true&charset=utf8mb4", cfg.DSN())
}

func TestLoadTestConfig(t *testing.T) {
	t.Run("incomplete environment", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "localhost")
		t.Setenv("TEST_DB_PORT", "")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Empty(t, cfg.Database.Host)
	})

	t.Run("complete environment", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "localhost")
		t.Setenv("TEST_DB_PORT", "3307")
		t.Setenv("TEST_DB_USER", "test")
		t.Setenv("TEST_DB_PASSWORD", "test")
		t.Setenv("TEST_DB_NAME", "turkishstudent_test")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Equal(t, "test:test@tcp(localhost:3307)/turkishstudent_test?parseTime=true&charset=utf8mb4", cfg.DSN())
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "localhost")
		t.Setenv("TEST_DB_PORT", "x")
		t.Setenv("TEST_DB_USER", "test")
		t.Setenv("TEST_DB_PASSWORD", "test")
		t.Setenv("TEST_DB_NAME", "db")

		_, err := LoadTestConfig()

		assert.ErrorContains(t, err, "invalid TEST_DB_PORT")
	})
}

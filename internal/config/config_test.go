package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"itemledger/internal/config"
)

func TestLoadConfig_Success(t *testing.T) {
	os.Setenv("API_SERVICE_PORT", "9090")
	os.Setenv("DB_DRIVER", "postgres")
	os.Setenv("POSTGRESQL_HOST", "localhost")
	os.Setenv("POSTGRESQL_PORT", "5433")
	os.Setenv("DEFAULT_PAGE_LIMIT", "50")
	defer os.Clearenv()

	cfg := config.LoadConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ApiServicePort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "localhost", cfg.PostgreSQLHost)
	assert.Equal(t, int64(5433), cfg.PostgreSQLPort)
	assert.Equal(t, 50, cfg.DefaultPageLimit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := config.LoadConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ApiServicePort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "sql_app.db", cfg.SQLitePath)
	assert.Equal(t, 100, cfg.DefaultPageLimit)
	assert.Equal(t, 1000, cfg.MaxPageLimit)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	os.Setenv("POSTGRESQL_PORT", "invalid")
	os.Setenv("DB_DRIVER", "oracle")
	defer os.Clearenv()

	cfg := config.LoadConfig()

	// Should fall back to defaults when invalid
	assert.NotNil(t, cfg)
	assert.Equal(t, int64(5432), cfg.PostgreSQLPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
}

func TestLoadConfig_LogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Clearenv()

	cfg := config.LoadConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestPostgresDSN(t *testing.T) {
	os.Clearenv()

	cfg := config.LoadConfig()
	dsn := cfg.PostgresDSN()

	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "sslmode=disable")
}

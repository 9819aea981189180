package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	DatabaseDriver     string // "sqlite" or "postgres"
	SQLitePath         string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	DefaultPageLimit   int
	MaxPageLimit       int
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                     // Default development
		LogLevel:           getLogLevel(),                                        // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8080"),                   // Default 8080
		DatabaseDriver:     getDatabaseDriver(),                                  // Default sqlite
		SQLitePath:         getEnv("SQLITE_PATH", "sql_app.db"),                  // Default local file
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                      // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),               // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "itemledger_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "itemledger_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "itemledger_db"),       // Default database name
		DefaultPageLimit:   getEnvAsInt("DEFAULT_PAGE_LIMIT", 100),               // Default page size
		MaxPageLimit:       getEnvAsInt("MAX_PAGE_LIMIT", 1000),                  // Hard cap on page size
	}
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.PostgreSQLHost,
		c.PostgreSQLUser,
		c.PostgreSQLPassword,
		c.PostgreSQLDatabase,
		c.PostgreSQLPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getDatabaseDriver() string {
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	if driver != "sqlite" && driver != "postgres" {
		return "sqlite"
	}
	return driver
}

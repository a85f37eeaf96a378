// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application
type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	Ingestion  IngestionConfig
	SeedAPIKey string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings.
// An empty Host means Redis is not configured.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// IngestionConfig holds settings of the word ingestion job
type IngestionConfig struct {
	DictionaryBaseURL string
	Delay             time.Duration
	PerSourceLimit    int
	HTTPTimeout       time.Duration
	RefreshCron       string
	IELTSSourceURL    string
	TOEFLSourceURL    string
}

const (
	defaultDictionaryBaseURL = "https://api.dictionaryapi.dev"
	defaultRefreshCron       = "0 3 * * 0"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Redis configuration (optional for the API, required by worker and scheduler)
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Port, err = intFromEnv("REDIS_PORT", 6379)
	if err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = intFromEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	// Server configuration
	cfg.Server.Port, err = intFromEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	cfg.SeedAPIKey = os.Getenv("SEED_API_KEY")

	if err := loadIngestion(&cfg.Ingestion); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadIngestion fills ingestion settings, applying defaults for unset keys
func loadIngestion(ing *IngestionConfig) error {
	var err error

	ing.DictionaryBaseURL = strings.TrimRight(os.Getenv("DICTIONARY_BASE_URL"), "/")
	if ing.DictionaryBaseURL == "" {
		ing.DictionaryBaseURL = defaultDictionaryBaseURL
	}

	ing.Delay, err = durationFromEnv("INGEST_DELAY", 300*time.Millisecond)
	if err != nil {
		return err
	}
	if ing.Delay < 0 {
		return fmt.Errorf("INGEST_DELAY must not be negative")
	}

	ing.PerSourceLimit, err = intFromEnv("INGEST_PER_SOURCE_LIMIT", 50)
	if err != nil {
		return err
	}
	if ing.PerSourceLimit <= 0 {
		return fmt.Errorf("INGEST_PER_SOURCE_LIMIT must be positive")
	}

	ing.HTTPTimeout, err = durationFromEnv("INGEST_HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return err
	}

	ing.RefreshCron = os.Getenv("INGEST_REFRESH_CRON")
	if ing.RefreshCron == "" {
		ing.RefreshCron = defaultRefreshCron
	}
	if _, err := cron.ParseStandard(ing.RefreshCron); err != nil {
		return fmt.Errorf("invalid INGEST_REFRESH_CRON: %w", err)
	}

	ing.IELTSSourceURL = os.Getenv("IELTS_SOURCE_URL")
	ing.TOEFLSourceURL = os.Getenv("TOEFL_SOURCE_URL")
	return nil
}

// parseOrigins splits a comma-separated origin list, defaulting to "*"
func parseOrigins(raw string) []string {
	if raw == "" {
		// Default to allow all origins if not specified (for development)
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, origin := range parts {
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

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
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

// RedisAddr returns the host:port address of Redis
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

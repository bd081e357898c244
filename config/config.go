// Package config loads the application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Zero values are never used directly;
// Load fills in defaults for anything the environment leaves unset.
type Config struct {
	Port string

	// CatalogPath points to a JSON catalog file. When empty, a deterministic
	// seed catalog of CatalogSize records is generated instead.
	CatalogPath string
	CatalogSize int
	CatalogSeed int64

	// OpenAI settings for the query interpreter. An empty APIKey disables
	// interpretation; search then runs on explicit criteria only.
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	InterpretTimeout time.Duration

	// Chat session store bounds.
	SessionTTL      time.Duration
	SessionCapacity int

	MaxPerPage int
	LogLevel   slog.Level
}

// Load reads configuration from the environment. A .env file is loaded first
// when present; a missing one is not an error.
func Load(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil && len(envPath) > 0 {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := &Config{
		Port:             getEnvAsString("PORT", "8080"),
		CatalogPath:      getEnvAsString("CATALOG_PATH", ""),
		CatalogSize:      getEnvAsInt("CATALOG_SIZE", 50),
		CatalogSeed:      int64(getEnvAsInt("CATALOG_SEED", 42)),
		OpenAIAPIKey:     getEnvAsString("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnvAsString("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnvAsString("OPENAI_MODEL", ""),
		InterpretTimeout: getEnvAsDuration("INTERPRET_TIMEOUT", 10*time.Second),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionCapacity:  getEnvAsInt("SESSION_CAPACITY", 1024),
		MaxPerPage:       getEnvAsInt("MAX_PER_PAGE", 100),
		LogLevel:         parseLogLevel(getEnvAsString("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at a confusing
// distance from their cause.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.CatalogPath == "" && c.CatalogSize <= 0 {
		return fmt.Errorf("CATALOG_SIZE must be positive when no CATALOG_PATH is set, got %d", c.CatalogSize)
	}
	if c.InterpretTimeout <= 0 {
		return fmt.Errorf("INTERPRET_TIMEOUT must be positive, got %s", c.InterpretTimeout)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionCapacity <= 0 {
		return fmt.Errorf("SESSION_CAPACITY must be positive, got %d", c.SessionCapacity)
	}
	if c.MaxPerPage <= 0 {
		return fmt.Errorf("MAX_PER_PAGE must be positive, got %d", c.MaxPerPage)
	}
	return nil
}

// InterpreterEnabled reports whether the OpenAI interpreter can be
// constructed from this configuration.
func (c *Config) InterpreterEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func getEnvAsString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("environment variable is not an integer, using default",
			"key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("environment variable is not a duration, using default",
			"key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// AI completion service configuration
	AIAPIKey string
	AIAPIURL string
	AIModel  string

	// Redis configuration (optional: caching and rate limiting degrade
	// gracefully when unset)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig builds a Config from environment variables. The AI API key may
// alternatively be supplied through a secret file (DEEPSEEK_API_KEY_FILE),
// which is how Docker secrets are mounted.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AIAPIURL:      getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		AIModel:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.AIAPIKey = apiKey

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadAPIKey reads the AI credential from the environment or a secret file.
func loadAPIKey() (string, error) {
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
	if keyFile == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

// RedisEnabled reports whether a Redis endpoint was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ServerAddr returns the host:port the HTTP server binds to.
func (c *Config) ServerAddr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

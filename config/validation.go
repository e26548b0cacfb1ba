package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the loaded configuration is usable.
func Validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.AIAPIKey == "" {
		return ValidationError{Field: "DEEPSEEK_API_KEY", Message: "must not be empty"}
	}
	if cfg.AIAPIURL == "" {
		return ValidationError{Field: "DEEPSEEK_API_URL", Message: "must not be empty"}
	}
	if cfg.AIModel == "" {
		return ValidationError{Field: "DEEPSEEK_MODEL", Message: "must not be empty"}
	}
	if len(cfg.AllowedOrigins) == 0 {
		return ValidationError{Field: "ALLOWED_ORIGINS", Message: "must list at least one origin"}
	}
	return nil
}

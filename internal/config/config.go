package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Levy   LevyConfig
	CORS   CORSConfig
	I18n   I18nConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// LevyConfig holds settings for the remote levy-calculation client.
// TimeoutSeconds of 0 means no client-side timeout; the upstream service
// documents none and the request context still bounds each call.
type LevyConfig struct {
	TimeoutSeconds int
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// I18nConfig holds display-language configuration.
type I18nConfig struct {
	DefaultLanguage string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LEVY_TIMEOUT_SECONDS", 0)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("DEFAULT_LANGUAGE", "en")

	// Bind environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Levy: LevyConfig{
			TimeoutSeconds: v.GetInt("LEVY_TIMEOUT_SECONDS"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Levy.TimeoutSeconds < 0 {
		return fmt.Errorf("LEVY_TIMEOUT_SECONDS must be non-negative")
	}

	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	if c.I18n.DefaultLanguage != "de" && c.I18n.DefaultLanguage != "en" {
		return fmt.Errorf("DEFAULT_LANGUAGE must be de or en, got %q", c.I18n.DefaultLanguage)
	}

	return nil
}

// LevyTimeout returns the configured client timeout as a duration.
func (c *Config) LevyTimeout() time.Duration {
	return time.Duration(c.Levy.TimeoutSeconds) * time.Second
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

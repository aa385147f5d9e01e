// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
)

// Config holds runtime configuration for the pipeline and server.
// Values come from the environment; a .env file is loaded by the CLI
// entry point before this runs.
type Config struct {
	// APIKey is the Gemini API key used for all oracle calls.
	APIKey string
	// Model overrides the default Gemini model name.
	Model string
	// DatabaseURL is the PostgreSQL connection URL (server mode only).
	DatabaseURL string
	// TemplatePath optionally overrides the embedded LaTeX template.
	TemplatePath string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		Model:        os.Getenv("GEMINI_MODEL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TemplatePath: os.Getenv("RESUME_TEMPLATE"),
	}
}

// Validate checks the fields required for the requested mode.
func (c *Config) Validate(needDatabase bool) error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if needDatabase && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.TemplatePath != "" {
		if _, err := os.Stat(c.TemplatePath); os.IsNotExist(err) {
			return fmt.Errorf("template file not found: %s", c.TemplatePath)
		}
	}
	return nil
}

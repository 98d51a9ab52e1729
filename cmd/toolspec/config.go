package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatJSON      = "json"
	FormatOpenAI    = "openai"
	FormatAnthropic = "anthropic"
	FormatGoogle    = "google"
	FormatGoOpenAI  = "goopenai"
	FormatMCP       = "mcp"
)

var formats = []string{FormatJSON, FormatOpenAI, FormatAnthropic, FormatGoogle, FormatGoOpenAI, FormatMCP}

// Config holds the CLI configuration. Environment variables provide the
// defaults and flags override them.
type Config struct {
	Format   string
	LogLevel string // debug, info, warn, error
	Strict   bool
	Serve    bool
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() *Config {
	godotenv.Load() // Load .env file if present

	return &Config{
		Format:   getEnvOrDefault("TOOLSPEC_FORMAT", FormatJSON),
		LogLevel: getEnvOrDefault("TOOLSPEC_LOG_LEVEL", "info"),
	}
}

// Validate checks that the configuration values are known.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format: %s (must be one of %v)", c.Format, formats)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

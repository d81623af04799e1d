// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	OutputDir   string
	HTTPTimeout time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		OutputDir: getEnv("OUTPUT_DIR", "apiResponses"),
	}

	// Zero keeps the http.Client default of no timeout.
	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

// VersionDir returns the response directory for a version label.
func (c *Config) VersionDir(version string) string {
	return filepath.Join(c.OutputDir, version)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	timeoutDisplay := c.HTTPTimeout.String()
	if c.HTTPTimeout == 0 {
		timeoutDisplay = "(none)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Output Directory: %s
HTTP Timeout:     %s`,
		c.OutputDir,
		timeoutDisplay,
	)
}

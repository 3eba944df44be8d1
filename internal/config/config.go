package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// api server
	ServerAddr string
	APIPrefix  string
	// web ui
	WebAddr string
	APIURL  string
	// cross-origin access is restricted to this origin
	FrontendURL string
	// rate limiting
	RateLimitWindow time.Duration
	RateLimitMax    int
	// logging
	LogLevel  string
	LogFormat string
}

// change here only as it populates both default and env aware configs
var cfgDefaults = map[string]string{
	"SERVER_ADDR":       ":8000",
	"API_PREFIX":        "/api/v1",
	"WEB_ADDR":          ":5173",
	"API_URL":           "http://localhost:8000",
	"FRONTEND_URL":      "http://localhost:5173",
	"RATE_LIMIT_WINDOW": "15m",
	"RATE_LIMIT_MAX":    "100",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
}

// Default returns a configuration object with defaults so tests can bypass
// .env files and ENV vars.
func Default() *Config {
	// safe to ignore the errors as these are defined by us just above
	window, _ := time.ParseDuration(cfgDefaults["RATE_LIMIT_WINDOW"])
	max, _ := strconv.Atoi(cfgDefaults["RATE_LIMIT_MAX"])

	return &Config{
		ServerAddr:      cfgDefaults["SERVER_ADDR"],
		APIPrefix:       cfgDefaults["API_PREFIX"],
		WebAddr:         cfgDefaults["WEB_ADDR"],
		APIURL:          cfgDefaults["API_URL"],
		FrontendURL:     cfgDefaults["FRONTEND_URL"],
		RateLimitWindow: window,
		RateLimitMax:    max,
		LogLevel:        cfgDefaults["LOG_LEVEL"],
		LogFormat:       cfgDefaults["LOG_FORMAT"],
	}
}

// Load creates a config by loading values from env vars falling back to
// defaults if these don't exist.
func Load() (*Config, error) {
	// Try to load a standard ".env" file. It's not an error if it doesn't exist.
	if err := loadEnvFile(".env"); err != nil {

		if !os.IsNotExist(errors.Unwrap(err)) {
			// If it's some other relevant error return it.
			return nil, err
		}
	}

	windowStr := getEnv("RATE_LIMIT_WINDOW", cfgDefaults["RATE_LIMIT_WINDOW"])
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		return nil, fmt.Errorf(`config error: RATE_LIMIT_WINDOW must be a duration such as "30s", "15m" or "1h": %v`, err)
	}

	maxStr := getEnv("RATE_LIMIT_MAX", cfgDefaults["RATE_LIMIT_MAX"])
	max, err := strconv.Atoi(maxStr)
	if err != nil || max < 1 {
		return nil, fmt.Errorf("config error: RATE_LIMIT_MAX must be a positive integer, got %q", maxStr)
	}

	cfg := &Config{
		ServerAddr:      getEnv("SERVER_ADDR", cfgDefaults["SERVER_ADDR"]),
		APIPrefix:       getEnv("API_PREFIX", cfgDefaults["API_PREFIX"]),
		WebAddr:         getEnv("WEB_ADDR", cfgDefaults["WEB_ADDR"]),
		APIURL:          getEnv("API_URL", cfgDefaults["API_URL"]),
		FrontendURL:     getEnv("FRONTEND_URL", cfgDefaults["FRONTEND_URL"]),
		RateLimitWindow: window,
		RateLimitMax:    max,
		LogLevel:        getEnv("LOG_LEVEL", cfgDefaults["LOG_LEVEL"]),
		LogFormat:       getEnv("LOG_FORMAT", cfgDefaults["LOG_FORMAT"]),
	}
	return cfg, nil
}

// getEnv returns the value of an environment var or the default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadEnvFile attempts to read config data pairs from the filename parameter
// to set as env vars. Returns an error if loading fails
func loadEnvFile(filename string) error {
	file, err := os.Open(filename)

	if err != nil {
		return fmt.Errorf("could not open env file %s: %w", filename, err)
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())

		// ignore blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2) // splits in parts on the first '=' it finds
		if len(parts) != 2 {
			return fmt.Errorf("invalid line %d in %s: %s", lineNum, filename, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if len(value) >= 2 {
			// remove quotes if they exist - quick and dirty for now
			if (value[0] == '"' && value[len(value)-1] == '"') || (value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		// now set from file if it the env var does not already exist
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", filename, err)
	}

	return nil
}

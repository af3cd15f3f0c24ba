package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_HOST=0.0.0.0
//	SERVER_PORT=8080
//	UPSTREAM_BASE_URL=https://query1.finance.yahoo.com
//	UPSTREAM_TIMEOUT_SECONDS=30
//	LOG_LEVEL=info
//	LOG_PRETTY=false
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Market-data provider settings
	Log      LogConfig      // Logging settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string // Interface to bind (e.g., "0.0.0.0")
	Port string // TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how the upstream market-data provider is reached.
//
// Fields:
//   - BaseURL: provider API host.
//   - Timeout: per-request bound; a call past it surfaces as an upstream
//     failure instead of hanging.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig holds logging settings consumed by the logger package.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 30)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing, avoiding unexpected runtime
// failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Upstream.Timeout <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

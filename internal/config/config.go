// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file and finally the defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the service name and version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Logging selects the log level and the locations of the log sinks.
	Logging Logging `envPrefix:"LOG_"`

	// Adapter holds the settings the command-line client uses to reach
	// the service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level identification.
type App struct {
	// Name is attached to every log record as the "service" field.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Logging configures the logger sinks.
type Logging struct {
	// Level is the minimum level emitted (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// ConsoleJSON switches the console sink from the human-readable format
	// to raw JSON lines.
	// Env: LOG_CONSOLE_JSON
	ConsoleJSON bool `env:"CONSOLE_JSON"`

	// ErrorFile receives error-level records only. Empty disables the sink.
	// Env: LOG_ERROR_FILE
	ErrorFile string `env:"ERROR_FILE"`

	// CombinedFile receives every record. Empty disables the sink.
	// Env: LOG_COMBINED_FILE
	CombinedFile string `env:"COMBINED_FILE"`
}

// Adapter holds the client's view of the service.
type Adapter struct {
	// HTTPAddress is the base URL of the calculator service
	// (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing service URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

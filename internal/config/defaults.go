// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultAppName               = "calculator-microservice"
	DefaultAppVersion            = "dev"
	DefaultHTTPAddress           = "localhost:3000"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultLogLevel              = "info"
	DefaultErrorLogFile          = "logs/error.log"
	DefaultCombinedLogFile       = "logs/combined.log"
	DefaultAdapterAddress        = "http://localhost:3000"
	DefaultAdapterRequestTimeout = 15 * time.Second
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Logging: Logging{
			Level:        DefaultLogLevel,
			ErrorFile:    DefaultErrorLogFile,
			CombinedFile: DefaultCombinedLogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// clientDefaultConfig is defaultConfig without log files: the client logs to
// the console only unless a file sink is set explicitly.
func clientDefaultConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Logging.ErrorFile = ""
	cfg.Logging.CombinedFile = ""
	return cfg
}

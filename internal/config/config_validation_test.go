package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown level",
			mutate:  func(cfg *StructuredConfig) { cfg.Logging.Level = "verbose" },
			wantErr: ErrInvalidLoggingConfigs,
		},
		{
			name:    "empty level",
			mutate:  func(cfg *StructuredConfig) { cfg.Logging.Level = "" },
			wantErr: ErrInvalidLoggingConfigs,
		},
		{name: "debug level", mutate: func(cfg *StructuredConfig) { cfg.Logging.Level = "debug" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

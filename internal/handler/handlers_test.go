package handler

import (
	"testing"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no services are needed for construction tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTP verifies that an HTTP address yields an HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:3000"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that a missing HTTP address is rejected
// with errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_RouterIsUsable verifies that the created handler can build
// its router.
func TestNewHandlers_RouterIsUsable(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":3000"}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}

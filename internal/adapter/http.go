package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

type httpCalculatorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCalculatorAdapter constructs the HTTP implementation of
// [CalculatorAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout to every
// request.
//
// Returns an error wrapping [ErrInvalidAdapterAddr] if the address is empty
// or cannot be parsed as a URL with a host.
func NewHTTPCalculatorAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CalculatorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterAddr, err)
	}

	return &httpCalculatorAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Calculate implements [CalculatorAdapter]. It sends GET /<op> with the
// operands as query parameters named after op.OperandNames.
func (h *httpCalculatorAdapter) Calculate(ctx context.Context, op models.Operation, operands ...string) (float64, error) {
	names, ok := op.OperandNames()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(operands) != len(names) {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrWrongOperandCount, op, len(names), len(operands))
	}

	query := make(map[string]string, len(names))
	for i, name := range names {
		query[name] = operands[i]
	}

	var result models.OperationResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&result).
		Get(op.Path())
	if err != nil {
		return 0, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	value := float64(result.Result)
	if math.IsNaN(value) {
		h.logger.Debug().Str("operation", string(op)).Msg("service returned a non-finite result")
	}

	return value, nil
}

// Greeting implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) Greeting(ctx context.Context) (string, error) {
	return h.getText(ctx, "/")
}

// Version implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) Version(ctx context.Context) (string, error) {
	return h.getText(ctx, "/api/version")
}

func (h *httpCalculatorAdapter) getText(ctx context.Context, path string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

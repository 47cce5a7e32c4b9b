// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the calculator HTTP API.
//
// The primary abstraction is [CalculatorAdapter], which decouples the
// command-line client from the transport. [NewHTTPCalculatorAdapter] is the
// resty-based implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400). The wrapped error text
// carries the message the server put in its {"error": ...} body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-calculator/models"
)

// CalculatorAdapter defines communication with a running calculator service.
type CalculatorAdapter interface {
	// Calculate runs op on the service with the given raw operands, passed
	// in the order of op.OperandNames. Operands are sent verbatim; the
	// service validates them. A non-finite result (JSON null) is returned
	// as NaN.
	Calculate(ctx context.Context, op models.Operation, operands ...string) (float64, error)

	// Greeting returns the body of GET /.
	Greeting(ctx context.Context) (string, error)

	// Version returns the body of GET /api/version.
	Version(ctx context.Context) (string, error)
}

// Package http implements the HTTP transport layer of the calculator service.
//
// It exposes route wiring, the operation handlers, and the middleware chain
// every request passes through: client address resolution, request tracing,
// completion logging and the fallback handler that turns unexpected faults
// into a 500 response. Handlers parse query operands and delegate the
// arithmetic to the service layer.
package http

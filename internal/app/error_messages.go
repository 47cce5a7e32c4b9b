// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// calculator server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place keeps the API wording
// consistent between handlers, the fallback handler and the client adapter
// tests.
package app

const (
	// MsgInvalidNumbers is returned when either operand of a two-operand
	// operation is missing or not a number.
	MsgInvalidNumbers = "Invalid numbers provided"

	// MsgInvalidNumber is returned when the operand of a single-operand
	// operation is missing or not a number.
	MsgInvalidNumber = "Invalid number provided"

	// MsgDivisionByZero is returned by /divide when the divisor is zero.
	MsgDivisionByZero = "Division by zero is not allowed"

	// MsgModuloByZero is returned by /modulo when the divisor is zero.
	MsgModuloByZero = "Modulo by zero is not allowed"

	// MsgNegativeSquareRoot is returned by /sqrt for a negative operand.
	MsgNegativeSquareRoot = "Square root of negative number is not supported"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is written for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgGreeting is the plain-text body of the root endpoint.
	MsgGreeting = "Hello from SIT737 Cloud Native App!"
)

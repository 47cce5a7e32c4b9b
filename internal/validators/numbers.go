// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the pure predicates used to check operands
// before any arithmetic is attempted.
//
// The predicates only answer "is this a number". Operation-specific
// preconditions (zero divisor, negative radicand) belong to the service
// layer, which knows which operation is being performed.
package validators

import "github.com/MKhiriev/go-calculator/models"

// ValidateNumbers reports whether both a and b are valid numbers.
func ValidateNumbers(a, b models.Operand) bool {
	return a.Valid && b.Valid
}

// ValidateSingleNumber reports whether a is a valid number.
func ValidateSingleNumber(a models.Operand) bool {
	return a.Valid
}

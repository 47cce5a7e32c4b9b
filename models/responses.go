// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
)

// OperationResult is the success body of every arithmetic endpoint:
//
//	{"result": 5}
type OperationResult struct {
	Result Number `json:"result"`
}

// ErrorResponse is the body of every 4xx/5xx JSON response:
//
//	{"error": "Division by zero is not allowed"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// Number is a float64 that encodes non-finite values (±Inf, NaN) as JSON
// null instead of failing to marshal.
type Number float64

// MarshalJSON implements [json.Marshaler].
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements [json.Unmarshaler]. null decodes to NaN.
func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Number(math.NaN())
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Operand is a numeric input parsed from a textual query parameter.
//
// Parsing never fails loudly: a missing or malformed value produces an
// Operand with Valid set to false. Callers decide what an invalid operand
// means for their operation.
type Operand struct {
	// Raw is the parameter value exactly as received (may be empty).
	Raw string

	// Value is the parsed float64. It is zero when Valid is false.
	Value float64

	// Valid reports whether Raw holds a number other than NaN.
	Valid bool
}

// infinityLiterals are the only spellings accepted for an infinite operand.
var infinityLiterals = map[string]float64{
	"Infinity":  math.Inf(1),
	"+Infinity": math.Inf(1),
	"-Infinity": math.Inf(-1),
}

// ParseOperand converts raw into an [Operand].
//
// Leading and trailing whitespace is ignored. Only plain decimal notation
// (optional sign, digits, fraction, exponent) and the literals in
// infinityLiterals are numbers; magnitudes beyond float64 range become ±Inf.
// Digit separators, hexadecimal forms, "inf", "NaN" and anything that does
// not parse as a whole yield an invalid operand.
func ParseOperand(raw string) Operand {
	operand := Operand{Raw: raw}
	text := strings.TrimSpace(raw)

	if value, ok := infinityLiterals[text]; ok {
		operand.Value = value
		operand.Valid = true
		return operand
	}

	// strconv.ParseFloat also takes Go literal syntax: 1_0, 0x1p4, inf, nan.
	if strings.ContainsAny(text, "_xXpPiInN") {
		return operand
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return operand
	}

	operand.Value = value
	operand.Valid = true
	return operand
}

// NewOperand returns a valid Operand holding value. NaN is reported as invalid.
func NewOperand(value float64) Operand {
	if math.IsNaN(value) {
		return Operand{Raw: "NaN"}
	}

	return Operand{
		Raw:   strconv.FormatFloat(value, 'g', -1, 64),
		Value: value,
		Valid: true,
	}
}

// String returns the raw textual form of the operand.
func (o Operand) String() string {
	return o.Raw
}

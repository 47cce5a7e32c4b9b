// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation names one arithmetic endpoint.
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
	OperationExponent Operation = "exponent"
	OperationSqrt     Operation = "sqrt"
	OperationModulo   Operation = "modulo"
)

// Operations lists every supported operation in endpoint order.
var Operations = []Operation{
	OperationAdd,
	OperationSubtract,
	OperationMultiply,
	OperationDivide,
	OperationExponent,
	OperationSqrt,
	OperationModulo,
}

// OperandNames returns the query parameter names an operation reads, in order.
// The second return value is false for an unknown operation.
func (o Operation) OperandNames() ([]string, bool) {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide, OperationModulo:
		return []string{"num1", "num2"}, true
	case OperationExponent:
		return []string{"base", "exponent"}, true
	case OperationSqrt:
		return []string{"num"}, true
	default:
		return nil, false
	}
}

// Path returns the HTTP path serving the operation.
func (o Operation) Path() string {
	return "/" + string(o)
}

// BinaryOperationRequest carries the two operands of add, subtract,
// multiply, divide, exponent and modulo.
type BinaryOperationRequest struct {
	A Operand
	B Operand
}

// UnaryOperationRequest carries the single operand of sqrt.
type UnaryOperationRequest struct {
	A Operand
}

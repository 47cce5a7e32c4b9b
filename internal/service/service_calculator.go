// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"

	"github.com/MKhiriev/go-calculator/models"
)

// calculatorService computes results with IEEE-754 float64 arithmetic. It
// trusts its input: operand validity and operation preconditions are
// enforced by CalculatorValidationService.
type calculatorService struct{}

// NewCalculatorService returns the undecorated arithmetic core.
func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (c *calculatorService) Add(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return req.A.Value + req.B.Value, nil
}

func (c *calculatorService) Subtract(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return req.A.Value - req.B.Value, nil
}

func (c *calculatorService) Multiply(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return req.A.Value * req.B.Value, nil
}

func (c *calculatorService) Divide(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return req.A.Value / req.B.Value, nil
}

func (c *calculatorService) Exponent(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return math.Pow(req.A.Value, req.B.Value), nil
}

// Modulo uses math.Mod: the result has the sign of the dividend.
func (c *calculatorService) Modulo(_ context.Context, req models.BinaryOperationRequest) (float64, error) {
	return math.Mod(req.A.Value, req.B.Value), nil
}

func (c *calculatorService) Sqrt(_ context.Context, req models.UnaryOperationRequest) (float64, error) {
	return math.Sqrt(req.A.Value), nil
}

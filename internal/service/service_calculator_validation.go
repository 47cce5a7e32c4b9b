package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calculator/internal/validators"
	"github.com/MKhiriev/go-calculator/models"
)

// CalculatorValidationService rejects invalid operands and operation
// preconditions before delegating to the wrapped service.
type CalculatorValidationService struct {
	inner CalculatorService
}

func NewCalculatorValidationService() CalculatorServiceWrapper {
	return &CalculatorValidationService{}
}

func (v *CalculatorValidationService) Add(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationAdd, req); err != nil {
		return 0, err
	}
	return v.inner.Add(ctx, req)
}

func (v *CalculatorValidationService) Subtract(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationSubtract, req); err != nil {
		return 0, err
	}
	return v.inner.Subtract(ctx, req)
}

func (v *CalculatorValidationService) Multiply(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationMultiply, req); err != nil {
		return 0, err
	}
	return v.inner.Multiply(ctx, req)
}

func (v *CalculatorValidationService) Divide(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationDivide, req); err != nil {
		return 0, err
	}
	if req.B.Value == 0 {
		return 0, fmt.Errorf("error validating %s operands: %w", models.OperationDivide, ErrDivisionByZero)
	}
	return v.inner.Divide(ctx, req)
}

func (v *CalculatorValidationService) Exponent(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationExponent, req); err != nil {
		return 0, err
	}
	return v.inner.Exponent(ctx, req)
}

func (v *CalculatorValidationService) Modulo(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	if err := validateBinary(models.OperationModulo, req); err != nil {
		return 0, err
	}
	if req.B.Value == 0 {
		return 0, fmt.Errorf("error validating %s operands: %w", models.OperationModulo, ErrModuloByZero)
	}
	return v.inner.Modulo(ctx, req)
}

func (v *CalculatorValidationService) Sqrt(ctx context.Context, req models.UnaryOperationRequest) (float64, error) {
	if !validators.ValidateSingleNumber(req.A) {
		return 0, fmt.Errorf("error validating %s operand %q: %w", models.OperationSqrt, req.A.Raw, ErrInvalidNumber)
	}
	if req.A.Value < 0 {
		return 0, fmt.Errorf("error validating %s operand: %w", models.OperationSqrt, ErrNegativeSquareRoot)
	}
	return v.inner.Sqrt(ctx, req)
}

func (v *CalculatorValidationService) Wrap(wrapper CalculatorService) CalculatorService {
	v.inner = wrapper
	return v
}

func validateBinary(op models.Operation, req models.BinaryOperationRequest) error {
	if !validators.ValidateNumbers(req.A, req.B) {
		return fmt.Errorf("error validating %s operands (%q, %q): %w", op, req.A.Raw, req.B.Raw, ErrInvalidNumbers)
	}
	return nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/rs/zerolog"
)

// CalculatorLoggingService writes a debug record for every operation,
// including rejected ones.
type CalculatorLoggingService struct {
	inner  CalculatorService
	logger *logger.Logger
}

func NewCalculatorLoggingService(logger *logger.Logger) CalculatorServiceWrapper {
	return &CalculatorLoggingService{logger: logger}
}

func (s *CalculatorLoggingService) Add(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Add(ctx, req)
	s.logBinary(ctx, models.OperationAdd, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Subtract(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Subtract(ctx, req)
	s.logBinary(ctx, models.OperationSubtract, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Multiply(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Multiply(ctx, req)
	s.logBinary(ctx, models.OperationMultiply, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Divide(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Divide(ctx, req)
	s.logBinary(ctx, models.OperationDivide, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Exponent(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Exponent(ctx, req)
	s.logBinary(ctx, models.OperationExponent, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Modulo(ctx context.Context, req models.BinaryOperationRequest) (float64, error) {
	result, err := s.inner.Modulo(ctx, req)
	s.logBinary(ctx, models.OperationModulo, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Sqrt(ctx context.Context, req models.UnaryOperationRequest) (float64, error) {
	result, err := s.inner.Sqrt(ctx, req)
	s.logUnary(ctx, models.OperationSqrt, req, result, err)
	return result, err
}

func (s *CalculatorLoggingService) Wrap(wrapper CalculatorService) CalculatorService {
	s.inner = wrapper
	return s
}

func (s *CalculatorLoggingService) logBinary(ctx context.Context, op models.Operation, req models.BinaryOperationRequest, result float64, err error) {
	event := logger.FromContextOr(ctx, s.logger).Debug().
		Str("operation", string(op)).
		Strs("operands", []string{req.A.Raw, req.B.Raw})
	logOutcome(event, result, err)
}

func (s *CalculatorLoggingService) logUnary(ctx context.Context, op models.Operation, req models.UnaryOperationRequest, result float64, err error) {
	event := logger.FromContextOr(ctx, s.logger).Debug().
		Str("operation", string(op)).
		Str("operand", req.A.Raw)
	logOutcome(event, result, err)
}

func logOutcome(event *zerolog.Event, result float64, err error) {
	if err != nil {
		event.Err(err).Msg("operation rejected")
		return
	}
	event.Float64("result", result).Msg("operation computed")
}

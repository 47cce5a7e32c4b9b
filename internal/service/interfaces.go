package service

import (
	"context"

	"github.com/MKhiriev/go-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CalculatorService performs the arithmetic behind every endpoint.
//
// Each method returns either the computed value or exactly one error. When
// the service is built by NewServices, the errors are the sentinels from
// errors.go, possibly wrapped.
type CalculatorService interface {
	Add(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Subtract(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Multiply(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Divide(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Exponent(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Modulo(ctx context.Context, req models.BinaryOperationRequest) (float64, error)
	Sqrt(ctx context.Context, req models.UnaryOperationRequest) (float64, error)
}

// AppInfoService exposes static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
)

type Services struct {
	CalculatorService CalculatorService
	AppInfoService    AppInfoService
}

// NewServices assembles the service layer. The calculator is decorated as
// logging(validation(core)) so rejected requests are logged too.
func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	calculator := NewCalculatorService()
	calculator = NewCalculatorValidationService().Wrap(calculator)
	calculator = NewCalculatorLoggingService(logger).Wrap(calculator)

	return &Services{
		CalculatorService: calculator,
		AppInfoService:    appInfo,
	}, nil
}

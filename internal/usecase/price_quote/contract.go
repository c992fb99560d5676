package price_quote

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
)

// PricingConfigService интерфейс сервиса конфигурации цен
type PricingConfigService interface {
	GetDomain(ctx context.Context, ownerID int64) (*domain.PricingConfig, error)
}

// PricingEngine интерфейс движка расчёта цены
type PricingEngine interface {
	CalculatePrice(cfg *domain.PricingConfig, req pricing.Request, employeeRate *float64) (*domain.PriceBreakdown, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetHourlyRateWithGracefulDegradation(ctx context.Context, employeeID, locationID int64) (*float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

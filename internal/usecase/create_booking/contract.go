package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByRoomAndWindow(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Reservation, error)
	GetByEmployeeAndWindow(ctx context.Context, employeeID int64, start, end time.Time) ([]*domain.Reservation, error)
}

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
	GetEmployeesByLocation(ctx context.Context, locationID int64) ([]staffservice.Employee, error)
	GetHourlyRateWithGracefulDegradation(ctx context.Context, employeeID, locationID int64) (*float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

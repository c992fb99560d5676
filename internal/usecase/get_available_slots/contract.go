package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// AvailabilityService интерфейс сервиса проверки доступности
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, roomID int64, date time.Time, durationMinutes int) ([]domain.AvailabilitySlot, error)
}

// PricingConfigService интерфейс сервиса конфигурации цен
// Нужен для часового пояса бизнеса: сетка слотов строится в нём
type PricingConfigService interface {
	GetDomain(ctx context.Context, ownerID int64) (*domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

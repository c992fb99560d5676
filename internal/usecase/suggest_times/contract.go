package suggest_times

import (
	"context"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// AvailabilityService интерфейс сервиса проверки доступности
type AvailabilityService interface {
	SuggestAlternativeTimes(ctx context.Context, roomID int64, preferredDate time.Time, durationMinutes int, daysToCheck int) ([]domain.AvailabilitySlot, error)
}

// PricingConfigService интерфейс сервиса конфигурации цен
type PricingConfigService interface {
	GetDomain(ctx context.Context, ownerID int64) (*domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

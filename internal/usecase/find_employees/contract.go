package find_employees

import (
	"context"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
)

// AvailabilityService интерфейс сервиса проверки доступности
type AvailabilityService interface {
	GetAvailableEmployees(ctx context.Context, locationID int64, serviceType domain.ServiceType, start, end time.Time) ([]staffservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

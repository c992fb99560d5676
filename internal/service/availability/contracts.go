package availability

import (
	"context"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
)

// ReservationRepository интерфейс репозитория бронирований
// Выборка идёт по точному запрошенному окну, а не по календарному дню:
// бронирования через полночь тоже попадают в проверку конфликтов
type ReservationRepository interface {
	// GetByRoomAndWindow возвращает неотменённые бронирования комнаты,
	// пересекающиеся с окном [start, end)
	GetByRoomAndWindow(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Reservation, error)

	// GetByEmployeeAndWindow возвращает неотменённые бронирования сотрудника,
	// пересекающиеся с окном [start, end)
	GetByEmployeeAndWindow(ctx context.Context, employeeID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetEmployeesByLocation(ctx context.Context, locationID int64) ([]staffservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

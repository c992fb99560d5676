package get_room_bookings

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByRoom(ctx context.Context, req *models.RoomReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

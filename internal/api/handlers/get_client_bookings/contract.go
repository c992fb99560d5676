package get_client_bookings

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

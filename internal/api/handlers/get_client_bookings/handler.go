package get_client_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings
// Query params: status (опционально: confirmed | cancelled | completed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var status *domain.ReservationStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.ReservationStatus(statusStr)
		switch s {
		case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
			status = &s
		default:
			h.logger.Warn("GET /clients/{id}/bookings - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	result, err := h.service.GetByClient(r.Context(), clientID, status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientID)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to get reservations: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/bookings - Retrieved %d reservations: client_id=%d",
		len(result.Reservations), clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

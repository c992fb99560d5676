package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/rooms/{roomId}/bookings
// Query params: from, to (RFC3339), status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req, err := toServiceRequest(roomID, r)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetByRoom(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /rooms/{id}/bookings - Failed to get reservations: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/bookings - Retrieved %d reservations: room_id=%d",
		len(result.Reservations), roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// toServiceRequest собирает запрос сервиса из query параметров
func toServiceRequest(roomID int64, r *http.Request) (*models.RoomReservationsRequest, error) {
	req := &models.RoomReservationsRequest{RoomID: roomID}

	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, err
		}
		req.WindowStart = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, err
		}
		req.WindowEnd = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		s := domain.ReservationStatus(statusStr)
		switch s {
		case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
			req.Status = &s
		default:
			return nil, errors.New("unknown status " + statusStr)
		}
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SBM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgInvalidOwnerID  = "некорректный ID владельца"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность слота"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-slots
// Query params: ownerId (обязательно), date (обязательно, YYYY-MM-DD),
// durationMinutes (опционально, дефолт 60)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	ownerID, err := strconv.ParseInt(query.Get("ownerId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes := 0
	if durationStr := query.Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		OwnerID:         ownerID,
		RoomID:          roomID,
		Date:            date,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)

		default:
			h.logger.Error("GET /rooms/{id}/available-slots - Failed to get slots: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/available-slots - Retrieved %d slots: room_id=%d, date=%s",
		len(result.Slots), roomID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}

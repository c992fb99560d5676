package suggest_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/domain"
	suggestTimes "github.com/m04kA/SBM-BookingService/internal/usecase/suggest_times"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidOwnerID     = "некорректный ID владельца"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "некорректная длительность слота"
	msgInvalidDaysToCheck = "некорректная глубина поиска"
)

type Handler struct {
	useCase SuggestTimesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/suggested-times
// Query params: ownerId (обязательно), preferredDate (обязательно, YYYY-MM-DD),
// durationMinutes, daysToCheck (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	ownerID, err := strconv.ParseInt(query.Get("ownerId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	preferredDate, err := time.Parse(domain.DateFormat, query.Get("preferredDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes := 0
	if durationStr := query.Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	daysToCheck := 0
	if daysStr := query.Get("daysToCheck"); daysStr != "" {
		daysToCheck, err = strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid daysToCheck: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysToCheck)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &suggestTimes.Request{
		OwnerID:         ownerID,
		RoomID:          roomID,
		PreferredDate:   preferredDate,
		DurationMinutes: durationMinutes,
		DaysToCheck:     daysToCheck,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestTimes.ErrInvalidDuration):
			h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, suggestTimes.ErrInvalidDaysToCheck):
			h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid daysToCheck: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysToCheck)

		case errors.Is(err, suggestTimes.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/suggested-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)

		default:
			h.logger.Error("GET /rooms/{id}/suggested-times - Failed to suggest: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/suggested-times - %d suggestions: room_id=%d",
		len(result.Suggestions), roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

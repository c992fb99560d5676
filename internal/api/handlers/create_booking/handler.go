package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgRoomNotAvailable     = "комната занята в выбранное время"
	msgEmployeeNotAvailable = "сотрудник занят в выбранное время"
	msgEmployeeNotFound     = "сотрудник не найден на локации"
	msgEmployeeIncompatible = "специализация сотрудника не соответствует услуге"
	msgUnknownServiceType   = "неизвестный тип услуги"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgDateInPast           = "время начала уже прошло"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Клиент - это аутентифицированный пользователь
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: room_id=%d, client_id=%d", req.RoomID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrEmployeeNotAvailable):
			h.logger.Warn("POST /bookings - Employee not available: room_id=%d, client_id=%d", req.RoomID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeNotAvailable)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrEmployeeIncompatible):
			h.logger.Warn("POST /bookings - Employee incompatible with service: type=%s", req.ServiceType)
			handlers.RespondBadRequest(w, msgEmployeeIncompatible)

		case errors.Is(err, createBooking.ErrUnknownServiceType):
			h.logger.Warn("POST /bookings - Unknown service type: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownServiceType)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start time in the past: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, room_id=%d",
		result.ID, clientID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

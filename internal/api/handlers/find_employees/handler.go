package find_employees

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	findEmployees "github.com/m04kA/SBM-BookingService/internal/usecase/find_employees"
)

const (
	msgInvalidLocationID  = "некорректный ID локации"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgUnknownServiceType = "неизвестный тип услуги"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
)

type Handler struct {
	useCase FindEmployeesUseCase
	logger  Logger
}

func NewHandler(useCase FindEmployeesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-employees
// Query params: serviceType, startTime, endTime (RFC3339) - все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationIDStr := vars["locationId"]

	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-employees - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()

	startTime, err := time.Parse(time.RFC3339, query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-employees - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := time.Parse(time.RFC3339, query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-employees - Invalid endTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &findEmployees.Request{
		LocationID:  locationID,
		ServiceType: query.Get("serviceType"),
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, findEmployees.ErrUnknownServiceType):
			h.logger.Warn("GET /locations/{id}/available-employees - Unknown service type: %v", err)
			handlers.RespondBadRequest(w, msgUnknownServiceType)

		case errors.Is(err, findEmployees.ErrInvalidTimeRange):
			h.logger.Warn("GET /locations/{id}/available-employees - Invalid time range: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, findEmployees.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/available-employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)

		default:
			h.logger.Error("GET /locations/{id}/available-employees - Failed to find employees: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/available-employees - %d employees available: location_id=%d",
		len(result.Employees), locationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

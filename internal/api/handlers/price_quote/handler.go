package price_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	priceQuote "github.com/m04kA/SBM-BookingService/internal/usecase/price_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgUnknownServiceType = "неизвестный тип услуги"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgEmployeeNotFound   = "сотрудник не найден"
)

type Handler struct {
	useCase PriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase PriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-quotes
// Расчёт цены без создания бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PriceQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price-quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, priceQuote.ErrUnknownServiceType):
			h.logger.Warn("POST /price-quotes - Unknown service type: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownServiceType)

		case errors.Is(err, priceQuote.ErrInvalidTimeRange):
			h.logger.Warn("POST /price-quotes - Invalid time range: owner_id=%d", req.OwnerID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, priceQuote.ErrEmployeeNotFound):
			h.logger.Warn("POST /price-quotes - Employee not found: owner_id=%d", req.OwnerID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, priceQuote.ErrInvalidInput):
			h.logger.Warn("POST /price-quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /price-quotes - Failed to quote: owner_id=%d, error=%v", req.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-quotes - Quoted %.2f: owner_id=%d, type=%s",
		result.FinalPrice, req.OwnerID, req.ServiceType)
	handlers.RespondJSON(w, http.StatusOK, result)
}

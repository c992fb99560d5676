package update_pricing_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg"
	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg/models"
)

const (
	msgInvalidOwnerID     = "некорректный ID владельца"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "конфигурация не прошла валидацию"
	msgNotFound           = "конфигурация не найдена"
)

// ValidationErrorResponse ответ с полным списком нарушений валидации
type ValidationErrorResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Fields  []pricing.FieldError `json:"fields"`
}

type Handler struct {
	service PricingConfigService
	logger  Logger
}

func NewHandler(service PricingConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/owners/{ownerId}/pricing-config
// Конфигурация заменяется целиком; при нарушениях валидации
// возвращаются все поля с ошибками разом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerIDStr := vars["ownerId"]

	ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /owners/{id}/pricing-config - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	var req models.SavePricingConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owners/{id}/pricing-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), ownerID, &req)
	if err != nil {
		var validationErrs pricing.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("PUT /owners/{id}/pricing-config - Validation failed: owner_id=%d, %d violations",
				ownerID, len(validationErrs))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: msgValidationFailed,
				Fields:  validationErrs,
			})

		case errors.Is(err, pricingcfg.ErrConfigNotFound):
			h.logger.Warn("PUT /owners/{id}/pricing-config - Config not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pricingcfg.ErrInvalidInput):
			h.logger.Warn("PUT /owners/{id}/pricing-config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)

		default:
			h.logger.Error("PUT /owners/{id}/pricing-config - Failed to save config: owner_id=%d, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owners/{id}/pricing-config - Config saved successfully: owner_id=%d, config_id=%d",
		ownerID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

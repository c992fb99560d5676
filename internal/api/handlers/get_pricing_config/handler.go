package get_pricing_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBM-BookingService/internal/api/handlers"
	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg"
)

const msgInvalidOwnerID = "некорректный ID владельца"

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

// Handle GET /api/v1/owners/{ownerId}/pricing-config
// Если конфигурации ещё нет, она создаётся с дефолтными значениями
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerIDStr := vars["ownerId"]

	ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/pricing-config - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	result, err := h.service.Get(r.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, pricingcfg.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/pricing-config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)

		default:
			h.logger.Error("GET /owners/{id}/pricing-config - Failed to get config: owner_id=%d, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/pricing-config - Config retrieved successfully: owner_id=%d, config_id=%d",
		ownerID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

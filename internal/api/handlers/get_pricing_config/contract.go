package get_pricing_config

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg/models"
)

type PricingConfigService interface {
	Get(ctx context.Context, ownerID int64) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

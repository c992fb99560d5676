package update_pricing_config

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/pricingcfg/models"
)

type PricingConfigService interface {
	Save(ctx context.Context, ownerID int64, req *models.SavePricingConfigRequest) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package pricingcfg

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации цен
type ConfigRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (*domain.PricingConfig, error)
	Create(ctx context.Context, cfg *domain.PricingConfig) (*domain.PricingConfig, error)
	UpdateByOwner(ctx context.Context, ownerID int64, cfg *domain.PricingConfig) (*domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

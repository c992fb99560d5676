package models

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модели

// SavePricingConfigRequest запрос на сохранение конфигурации цен
// Конфигурация сохраняется целиком: либо принимаются все поля,
// либо ни одно (частичного применения нет)
type SavePricingConfigRequest struct {
	DeadHoursStart           int     `json:"deadHoursStart"`
	DeadHoursEnd             int     `json:"deadHoursEnd"`
	DeadHourDiscount         float64 `json:"deadHourDiscount"`
	BaseRatePhysiotherapy    float64 `json:"baseRatePhysiotherapy"`
	BaseRatePersonalTraining float64 `json:"baseRatePersonalTraining"`
	BaseRateOther            float64 `json:"baseRateOther"`
	WeekdayMultiplier        float64 `json:"weekdayMultiplier"`
	WeekendMultiplier        float64 `json:"weekendMultiplier"`
	Timezone                 string  `json:"timezone"`
}

// Response модели

// PricingConfigResponse ответ с данными конфигурации цен
type PricingConfigResponse struct {
	ID                       int64     `json:"id"`
	OwnerID                  int64     `json:"ownerId"`
	DeadHoursStart           int       `json:"deadHoursStart"`
	DeadHoursEnd             int       `json:"deadHoursEnd"`
	DeadHourDiscount         float64   `json:"deadHourDiscount"`
	BaseRatePhysiotherapy    float64   `json:"baseRatePhysiotherapy"`
	BaseRatePersonalTraining float64   `json:"baseRatePersonalTraining"`
	BaseRateOther            float64   `json:"baseRateOther"`
	WeekdayMultiplier        float64   `json:"weekdayMultiplier"`
	WeekendMultiplier        float64   `json:"weekendMultiplier"`
	Timezone                 string    `json:"timezone"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// Методы конвертации

// ToDomainConfig конвертирует запрос в domain модель
func (r *SavePricingConfigRequest) ToDomainConfig(ownerID int64) *domain.PricingConfig {
	return &domain.PricingConfig{
		OwnerID:                  ownerID,
		DeadHoursStart:           r.DeadHoursStart,
		DeadHoursEnd:             r.DeadHoursEnd,
		DeadHourDiscount:         r.DeadHourDiscount,
		BaseRatePhysiotherapy:    r.BaseRatePhysiotherapy,
		BaseRatePersonalTraining: r.BaseRatePersonalTraining,
		BaseRateOther:            r.BaseRateOther,
		WeekdayMultiplier:        r.WeekdayMultiplier,
		WeekendMultiplier:        r.WeekendMultiplier,
		Timezone:                 r.Timezone,
	}
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.PricingConfig) *PricingConfigResponse {
	if c == nil {
		return nil
	}

	return &PricingConfigResponse{
		ID:                       c.ID,
		OwnerID:                  c.OwnerID,
		DeadHoursStart:           c.DeadHoursStart,
		DeadHoursEnd:             c.DeadHoursEnd,
		DeadHourDiscount:         c.DeadHourDiscount,
		BaseRatePhysiotherapy:    c.BaseRatePhysiotherapy,
		BaseRatePersonalTraining: c.BaseRatePersonalTraining,
		BaseRateOther:            c.BaseRateOther,
		WeekdayMultiplier:        c.WeekdayMultiplier,
		WeekendMultiplier:        c.WeekendMultiplier,
		Timezone:                 c.Timezone,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

func validConfig() *domain.PricingConfig {
	return &domain.PricingConfig{
		OwnerID:                  1,
		DeadHoursStart:           22,
		DeadHoursEnd:             6,
		DeadHourDiscount:         0.3,
		BaseRatePhysiotherapy:    150,
		BaseRatePersonalTraining: 100,
		BaseRateOther:            60,
		WeekdayMultiplier:        1.0,
		WeekendMultiplier:        1.2,
		Timezone:                 "Europe/Moscow",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(cfg *domain.PricingConfig)
		wantFields []string
	}{
		{
			name:       "valid config has no errors",
			mutate:     func(cfg *domain.PricingConfig) {},
			wantFields: nil,
		},
		{
			name:       "wrap-midnight dead hours are valid",
			mutate:     func(cfg *domain.PricingConfig) { cfg.DeadHoursStart = 22; cfg.DeadHoursEnd = 6 },
			wantFields: nil,
		},
		{
			name:       "dead hours start out of range",
			mutate:     func(cfg *domain.PricingConfig) { cfg.DeadHoursStart = 24 },
			wantFields: []string{"deadHoursStart"},
		},
		{
			name:       "negative dead hours end",
			mutate:     func(cfg *domain.PricingConfig) { cfg.DeadHoursEnd = -1 },
			wantFields: []string{"deadHoursEnd"},
		},
		{
			name:       "discount above one",
			mutate:     func(cfg *domain.PricingConfig) { cfg.DeadHourDiscount = 1.5 },
			wantFields: []string{"deadHourDiscount"},
		},
		{
			name:       "negative discount",
			mutate:     func(cfg *domain.PricingConfig) { cfg.DeadHourDiscount = -0.1 },
			wantFields: []string{"deadHourDiscount"},
		},
		{
			name:       "negative base rate",
			mutate:     func(cfg *domain.PricingConfig) { cfg.BaseRatePhysiotherapy = -1 },
			wantFields: []string{"baseRatePhysiotherapy"},
		},
		{
			name:       "zero multiplier",
			mutate:     func(cfg *domain.PricingConfig) { cfg.WeekdayMultiplier = 0 },
			wantFields: []string{"weekdayMultiplier"},
		},
		{
			name:       "empty timezone",
			mutate:     func(cfg *domain.PricingConfig) { cfg.Timezone = "" },
			wantFields: []string{"timezone"},
		},
		{
			name:       "unknown timezone",
			mutate:     func(cfg *domain.PricingConfig) { cfg.Timezone = "Mars/Olympus" },
			wantFields: []string{"timezone"},
		},
		{
			name: "all violations are collected at once",
			mutate: func(cfg *domain.PricingConfig) {
				cfg.DeadHoursStart = -1
				cfg.DeadHourDiscount = 2
				cfg.BaseRateOther = -10
				cfg.WeekendMultiplier = -1
				cfg.Timezone = ""
			},
			wantFields: []string{"deadHoursStart", "deadHourDiscount", "baseRateOther", "weekendMultiplier", "timezone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := ValidateConfig(cfg)

			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors(), "unexpected errors: %v", errs)
				return
			}

			assert.True(t, errs.HasErrors())

			gotFields := make([]string, 0, len(errs))
			for _, fe := range errs {
				gotFields = append(gotFields, fe.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, gotFields)
		})
	}
}

package pricing

import (
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// FieldError ошибка валидации отдельного поля конфигурации
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors список ошибок валидации конфигурации
// Валидация не прерывается на первой ошибке - собираются все нарушения,
// чтобы форма могла показать их разом
type ValidationErrors []FieldError

// Error реализует error
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "pricing: no validation errors"
	}
	return fmt.Sprintf("pricing: config validation failed: %s: %s (and %d more)",
		v[0].Field, v[0].Message, len(v)-1)
}

// HasErrors возвращает true, если есть хотя бы одно нарушение
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// ValidateConfig проверяет все поля конфигурации цен
// Возвращает полный список нарушений; некорректная конфигурация
// не должна персиститься ни частично, ни целиком
func ValidateConfig(cfg *domain.PricingConfig) ValidationErrors {
	var errs ValidationErrors

	if cfg.DeadHoursStart < domain.MinHourOfDay || cfg.DeadHoursStart > domain.MaxHourOfDay {
		errs = append(errs, FieldError{
			Field:   "deadHoursStart",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinHourOfDay, domain.MaxHourOfDay),
		})
	}

	if cfg.DeadHoursEnd < domain.MinHourOfDay || cfg.DeadHoursEnd > domain.MaxHourOfDay {
		errs = append(errs, FieldError{
			Field:   "deadHoursEnd",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinHourOfDay, domain.MaxHourOfDay),
		})
	}

	if cfg.DeadHourDiscount < 0 || cfg.DeadHourDiscount > 1 {
		errs = append(errs, FieldError{
			Field:   "deadHourDiscount",
			Message: "must be between 0 and 1",
		})
	}

	if cfg.BaseRatePhysiotherapy < 0 {
		errs = append(errs, FieldError{
			Field:   "baseRatePhysiotherapy",
			Message: "must not be negative",
		})
	}

	if cfg.BaseRatePersonalTraining < 0 {
		errs = append(errs, FieldError{
			Field:   "baseRatePersonalTraining",
			Message: "must not be negative",
		})
	}

	if cfg.BaseRateOther < 0 {
		errs = append(errs, FieldError{
			Field:   "baseRateOther",
			Message: "must not be negative",
		})
	}

	if cfg.WeekdayMultiplier <= 0 {
		errs = append(errs, FieldError{
			Field:   "weekdayMultiplier",
			Message: "must be positive",
		})
	}

	if cfg.WeekendMultiplier <= 0 {
		errs = append(errs, FieldError{
			Field:   "weekendMultiplier",
			Message: "must be positive",
		})
	}

	if cfg.Timezone == "" {
		errs = append(errs, FieldError{
			Field:   "timezone",
			Message: "is required",
		})
	} else if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		errs = append(errs, FieldError{
			Field:   "timezone",
			Message: fmt.Sprintf("unknown IANA timezone %q", cfg.Timezone),
		})
	}

	return errs
}

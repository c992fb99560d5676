package suggest_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/availability"
)

// UseCase use case для подбора альтернативного времени
type UseCase struct {
	availability  AvailabilityService
	pricingConfig PricingConfigService
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	pricingConfig PricingConfigService,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability:  availability,
		pricingConfig: pricingConfig,
		logger:        logger,
	}
}

// Execute подбирает свободные слоты начиная с предпочитаемой даты
// Дата интерпретируется в часовом поясе бизнеса из конфигурации владельца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestTimes: owner=%d, room=%d, from=%s, duration=%d, days=%d",
		req.OwnerID, req.RoomID, req.PreferredDate.Format(domain.DateFormat),
		req.DurationMinutes, req.DaysToCheck)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestTimes: validation failed: %v", err)
		return nil, err
	}

	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = domain.DefaultSlotDurationMinutes
	}

	// 2. Часовой пояс бизнеса из конфигурации владельца
	cfg, err := uc.pricingConfig.GetDomain(ctx, req.OwnerID)
	if err != nil {
		uc.logger.Error("SuggestTimes: failed to get pricing config for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		uc.logger.Error("SuggestTimes: bad timezone %q for owner=%d: %v", cfg.Timezone, req.OwnerID, err)
		return nil, fmt.Errorf("%w: bad timezone %q: %v", ErrInternal, cfg.Timezone, err)
	}

	y, m, d := req.PreferredDate.Date()
	localDate := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// 3. Подбор альтернатив
	slots, err := uc.availability.SuggestAlternativeTimes(ctx, req.RoomID, localDate, durationMinutes, req.DaysToCheck)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
		if errors.Is(err, availability.ErrInvalidDaysToCheck) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDaysToCheck, err)
		}
		uc.logger.Error("SuggestTimes: suggestion failed for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: suggestion failed: %v", ErrInternal, err)
	}

	uc.logger.Info("SuggestTimes: room=%d: %d suggestions", req.RoomID, len(slots))

	return fromDomainSlots(req.RoomID, slots), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferredDate is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidDuration, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.DaysToCheck < 0 || req.DaysToCheck > domain.MaxDaysToCheck {
		return fmt.Errorf("%w: daysToCheck must be between 1 and %d",
			ErrInvalidDaysToCheck, domain.MaxDaysToCheck)
	}

	return nil
}

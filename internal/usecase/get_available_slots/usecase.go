package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/availability"
)

// UseCase use case для получения сетки слотов комнаты на дату
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

// Execute возвращает все слоты комнаты на дату с пометкой занятости
// Дата интерпретируется в часовом поясе бизнеса из конфигурации владельца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: owner=%d, room=%d, date=%s, duration=%d",
		req.OwnerID, req.RoomID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = domain.DefaultSlotDurationMinutes
	}

	// 2. Часовой пояс бизнеса из конфигурации владельца
	cfg, err := uc.pricingConfig.GetDomain(ctx, req.OwnerID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get pricing config for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad timezone %q for owner=%d: %v", cfg.Timezone, req.OwnerID, err)
		return nil, fmt.Errorf("%w: bad timezone %q: %v", ErrInternal, cfg.Timezone, err)
	}

	// 3. Переносим календарную дату в пояс бизнеса
	y, m, d := req.Date.Date()
	localDate := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// 4. Строим сетку
	slots, err := uc.availability.GetAvailableSlots(ctx, req.RoomID, localDate, durationMinutes)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
		uc.logger.Error("GetAvailableSlots: availability check failed for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: room=%d, date=%s: %d slots",
		req.RoomID, localDate.Format(domain.DateFormat), len(slots))

	return fromDomainSlots(req.RoomID, localDate, durationMinutes, slots), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidDuration, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}

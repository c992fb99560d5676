package find_employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/service/availability"
)

// UseCase use case для поиска свободных сотрудников
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute возвращает сотрудников локации, совместимых с типом услуги
// и свободных в окне [start, end)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindEmployees: location=%d, type=%s, window=[%s, %s)",
		req.LocationID, req.ServiceType,
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindEmployees: validation failed: %v", err)
		return nil, err
	}

	// 2. Поиск свободных сотрудников
	employees, err := uc.availability.GetAvailableEmployees(
		ctx, req.LocationID, domain.ServiceType(req.ServiceType), req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, availability.ErrUnknownServiceType) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
		}
		if errors.Is(err, availability.ErrInvalidTimeRange) {
			return nil, ErrInvalidTimeRange
		}
		uc.logger.Error("FindEmployees: search failed for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: search failed: %v", ErrInternal, err)
	}

	uc.logger.Info("FindEmployees: location=%d: %d employees available", req.LocationID, len(employees))

	return fromStaffEmployees(employees), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimeRange
	}

	return nil
}

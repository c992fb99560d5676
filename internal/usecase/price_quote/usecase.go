package price_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	staffClient "github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
)

// UseCase use case для расчёта цены без создания бронирования
type UseCase struct {
	pricingConfig PricingConfigService
	pricingEngine PricingEngine
	staffClient   StaffServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingConfig PricingConfigService,
	pricingEngine PricingEngine,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingConfig: pricingConfig,
		pricingEngine: pricingEngine,
		staffClient:   staffClient,
		logger:        logger,
	}
}

// Execute выполняет расчёт цены для запрошенного окна
// Расчёт не резервирует слот и не проверяет доступность:
// котировка остаётся валидной, пока не изменилась конфигурация
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PriceQuote: owner=%d, type=%s, window=[%s, %s)",
		req.OwnerID, req.ServiceType,
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию цен владельца
	cfg, err := uc.pricingConfig.GetDomain(ctx, req.OwnerID)
	if err != nil {
		uc.logger.Error("PriceQuote: failed to get pricing config for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 3. Персональная ставка сотрудника (с graceful degradation)
	var employeeRate *float64
	if req.EmployeeID != nil {
		employeeRate, err = uc.staffClient.GetHourlyRateWithGracefulDegradation(ctx, *req.EmployeeID, req.LocationID)
		if err != nil {
			if errors.Is(err, staffClient.ErrServiceDegraded) {
				uc.logger.Warn("PriceQuote: staff service degraded, quoting base rate for employee=%d", *req.EmployeeID)
				employeeRate = nil
			} else if errors.Is(err, staffClient.ErrEmployeeNotFound) {
				uc.logger.Warn("PriceQuote: employee id=%d not found", *req.EmployeeID)
				return nil, ErrEmployeeNotFound
			} else {
				uc.logger.Error("PriceQuote: failed to get hourly rate for employee=%d: %v", *req.EmployeeID, err)
				return nil, fmt.Errorf("%w: failed to get hourly rate: %v", ErrInternal, err)
			}
		}
	}

	// 4. Расчёт цены
	breakdown, err := uc.pricingEngine.CalculatePrice(cfg, pricing.Request{
		ServiceType: domain.ServiceType(req.ServiceType),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, employeeRate)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownServiceType) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
		}
		if errors.Is(err, pricing.ErrInvalidTimeRange) {
			return nil, ErrInvalidTimeRange
		}
		uc.logger.Error("PriceQuote: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("PriceQuote: quoted %.2f (deadHour=%v)", breakdown.FinalPrice, breakdown.IsDeadHour)

	return fromBreakdown(breakdown), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil {
		if *req.EmployeeID <= 0 {
			return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
		}
		if req.LocationID <= 0 {
			return fmt.Errorf("%w: locationID is required when employeeID is set", ErrInvalidInput)
		}
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

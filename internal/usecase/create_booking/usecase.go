package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	staffClient "github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	pricingConfig   PricingConfigService
	pricingEngine   PricingEngine
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pricingConfig PricingConfigService,
	pricingEngine PricingEngine,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pricingConfig:   pricingConfig,
		pricingEngine:   pricingEngine,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой строк (FOR UPDATE) - два конкурентных запроса на одно окно
// не могут оба пройти проверку конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, location=%d, room=%d, client=%d, type=%s, window=[%s, %s)",
		req.OwnerID, req.LocationID, req.RoomID, req.ClientID, req.ServiceType,
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию цен владельца (создаётся с дефолтами при отсутствии)
	cfg, err := uc.pricingConfig.GetDomain(ctx, req.OwnerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing config for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 3. Если указан сотрудник - проверяем его существование и совместимость
	// и получаем персональную ставку
	var employeeRate *float64
	if req.EmployeeID != nil {
		employeeRate, err = uc.resolveEmployee(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	// 4. Считаем цену до транзакции: расчёт детерминирован и
	// не зависит от состояния БД
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
		uc.logger.Error("CreateBooking: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: calculated price %.2f (deadHour=%v, multiplier=%.2f)",
		breakdown.FinalPrice, breakdown.IsDeadHour, breakdown.TimeMultiplier)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования комнаты в запрошенном окне с блокировкой (FOR UPDATE)
		roomReservations, err := uc.reservationRepo.GetByRoomAndWindow(txCtx, req.RoomID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get room reservations: %v", err)
			return fmt.Errorf("%w: failed to get room reservations: %v", ErrInternal, err)
		}

		if hasActiveOverlap(roomReservations, req.StartTime, req.EndTime) {
			uc.logger.Warn("CreateBooking: room=%d is busy in requested window", req.RoomID)
			return ErrRoomNotAvailable
		}

		// 5.2. Бронирования сотрудника в запрошенном окне (если сотрудник указан)
		if req.EmployeeID != nil {
			employeeReservations, err := uc.reservationRepo.GetByEmployeeAndWindow(
				txCtx, *req.EmployeeID, req.StartTime, req.EndTime)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get employee reservations: %v", err)
				return fmt.Errorf("%w: failed to get employee reservations: %v", ErrInternal, err)
			}

			if hasActiveOverlap(employeeReservations, req.StartTime, req.EndTime) {
				uc.logger.Warn("CreateBooking: employee=%d is busy in requested window", *req.EmployeeID)
				return ErrEmployeeNotAvailable
			}
		}

		// 5.3. Создаем бронирование с денормализованным расчётом цены
		reservation := &domain.Reservation{
			OwnerID:     req.OwnerID,
			LocationID:  req.LocationID,
			RoomID:      req.RoomID,
			EmployeeID:  req.EmployeeID,
			ClientID:    req.ClientID,
			ServiceType: domain.ServiceType(req.ServiceType),
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusConfirmed,
			FinalPrice:  breakdown.FinalPrice,
			IsDeadHour:  breakdown.IsDeadHour,
			Notes:       req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created reservation id=%d", result.ID)

	return buildResponse(result, breakdown), nil
}

// resolveEmployee проверяет сотрудника на локации и возвращает его
// персональную часовую ставку (nil = применяется базовая ставка категории)
func (uc *UseCase) resolveEmployee(ctx context.Context, req *Request) (*float64, error) {
	employees, err := uc.staffClient.GetEmployeesByLocation(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get employees for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	var employee *staffClient.Employee
	for i := range employees {
		if employees[i].ID == *req.EmployeeID {
			employee = &employees[i]
			break
		}
	}

	if employee == nil || !employee.IsActive {
		uc.logger.Warn("CreateBooking: employee id=%d not found or inactive at location=%d",
			*req.EmployeeID, req.LocationID)
		return nil, ErrEmployeeNotFound
	}

	if !employee.Type.CompatibleWith(domain.ServiceType(req.ServiceType)) {
		uc.logger.Warn("CreateBooking: employee id=%d (%s) is not compatible with service %s",
			employee.ID, employee.Type, req.ServiceType)
		return nil, ErrEmployeeIncompatible
	}

	// StaffService может быть недоступен - в этом случае бронирование
	// не блокируется, применяется базовая ставка категории
	rate, err := uc.staffClient.GetHourlyRateWithGracefulDegradation(ctx, *req.EmployeeID, req.LocationID)
	if err != nil {
		if errors.Is(err, staffClient.ErrServiceDegraded) {
			uc.logger.Warn("CreateBooking: staff service degraded, falling back to base rate for employee=%d",
				*req.EmployeeID)
			return nil, nil
		}
		uc.logger.Error("CreateBooking: failed to get hourly rate for employee=%d: %v", *req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get hourly rate: %v", ErrInternal, err)
	}

	return rate, nil
}

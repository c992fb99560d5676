package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
)

// Checker сервис проверки доступности комнат и сотрудников
// Не содержит изменяемого состояния: каждая операция - чистая функция
// от аргументов и снапшота, прочитанного через репозиторий
//
// Сам по себе Checker НЕ даёт атомарности "проверил - забронировал":
// защита от двойного бронирования обеспечивается вызовом его методов
// внутри сериализуемой транзакции (см. usecase/create_booking)
type Checker struct {
	reservationRepo ReservationRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewChecker создает новый экземпляр сервиса доступности
func NewChecker(
	reservationRepo ReservationRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// IsAvailable проверяет, свободна ли комната в окне [start, end)
//
// Конфликтом считается только настоящее пересечение полуинтервалов:
// бронирование, заканчивающееся ровно в start (или начинающееся ровно в end),
// конфликтом НЕ является
func (c *Checker) IsAvailable(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidTimeRange
	}

	reservations, err := c.reservationRepo.GetByRoomAndWindow(ctx, roomID, start, end)
	if err != nil {
		c.logger.Error("IsAvailable: failed to fetch reservations for room=%d: %v", roomID, err)
		return false, fmt.Errorf("%w: failed to fetch reservations: %v", ErrInternal, err)
	}

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

// CheckEmployeeAvailability проверяет, свободен ли сотрудник в окне [start, end)
// Правило пересечения то же, что и для комнат
func (c *Checker) CheckEmployeeAvailability(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidTimeRange
	}

	reservations, err := c.reservationRepo.GetByEmployeeAndWindow(ctx, employeeID, start, end)
	if err != nil {
		c.logger.Error("CheckEmployeeAvailability: failed to fetch reservations for employee=%d: %v", employeeID, err)
		return false, fmt.Errorf("%w: failed to fetch reservations: %v", ErrInternal, err)
	}

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

// GetAvailableEmployees возвращает сотрудников локации, совместимых с типом
// услуги и свободных в окне [start, end)
//
// Кандидаты проверяются последовательно, порядок справочника сохраняется -
// результат детерминирован для одинакового состояния данных
func (c *Checker) GetAvailableEmployees(
	ctx context.Context,
	locationID int64,
	serviceType domain.ServiceType,
	start, end time.Time,
) ([]staffservice.Employee, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	if !serviceType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, serviceType)
	}

	employees, err := c.staffClient.GetEmployeesByLocation(ctx, locationID)
	if err != nil {
		c.logger.Error("GetAvailableEmployees: failed to fetch employees for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to fetch employees: %v", ErrInternal, err)
	}

	available := make([]staffservice.Employee, 0, len(employees))
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		if !emp.Type.CompatibleWith(serviceType) {
			continue
		}

		free, err := c.CheckEmployeeAvailability(ctx, emp.ID, start, end)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, emp)
		}
	}

	c.logger.Info("GetAvailableEmployees: location=%d, service=%s: %d of %d employees available",
		locationID, serviceType, len(available), len(employees))

	return available, nil
}

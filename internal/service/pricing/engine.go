package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request запрос на расчёт цены бронирования
type Request struct {
	ServiceType domain.ServiceType
	StartTime   time.Time
	EndTime     time.Time
}

// Engine движок расчёта цены
// Чистая функция над (конфигурация, запрос, ставка сотрудника):
// без I/O, без состояния, результат детерминирован
type Engine struct{}

// NewEngine создает новый экземпляр движка расчёта цены
func NewEngine() *Engine {
	return &Engine{}
}

// CalculatePrice вычисляет разбивку цены для запрошенного бронирования
//
// Алгоритм:
//  1. Длительность в дробных часах (1.5h допустимо)
//  2. Базовая ставка по категории услуги
//  3. Ставка сотрудника перекрывает базовую, если передана и > 0
//  4. Множитель по дню недели начала (суббота/воскресенье = weekend)
//  5. Мёртвые часы - по часу начала в часовом поясе бизнеса,
//     окно может переходить через полночь
//  6. Скидка применяется ко всей стоимости, итог округляется до 2 знаков
//
// employeeRate - опциональная ставка сотрудника, получение которой лежит
// на вызывающей стороне; движок ничего не знает о справочнике сотрудников
func (e *Engine) CalculatePrice(cfg *domain.PricingConfig, req Request, employeeRate *float64) (*domain.PriceBreakdown, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if !req.ServiceType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: bad timezone %q: %v", ErrInvalidConfig, cfg.Timezone, err)
	}

	// Все календарные решения принимаются в поясе бизнеса,
	// а не в поясе входного времени и не в UTC
	localStart := req.StartTime.In(loc)

	durationHours := req.EndTime.Sub(req.StartTime).Hours()

	baseRate := cfg.BaseRateFor(req.ServiceType)

	finalBaseRate := baseRate
	if employeeRate != nil && *employeeRate > 0 {
		finalBaseRate = *employeeRate
	}

	weekday := localStart.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	timeMultiplier := cfg.WeekdayMultiplier
	if isWeekend {
		timeMultiplier = cfg.WeekendMultiplier
	}

	isDeadHour := cfg.ContainsDeadHour(localStart.Hour())

	basePrice := finalBaseRate * durationHours * timeMultiplier

	var discountAmount float64
	if isDeadHour {
		discountAmount = basePrice * cfg.DeadHourDiscount
	}

	return &domain.PriceBreakdown{
		BaseRate:       baseRate,
		EmployeeRate:   employeeRate,
		FinalBaseRate:  finalBaseRate,
		DurationHours:  durationHours,
		IsDeadHour:     isDeadHour,
		TimeMultiplier: timeMultiplier,
		BasePrice:      roundCurrency(basePrice),
		DiscountAmount: roundCurrency(discountAmount),
		FinalPrice:     roundCurrency(basePrice - discountAmount),
	}, nil
}

// roundCurrency округляет до 2 знаков по правилу round-half-up
func roundCurrency(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

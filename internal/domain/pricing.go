package domain

import "time"

// PricingConfig represents the pricing configuration of a business owner
// Ровно одна конфигурация на владельца; при первом чтении, если записи нет,
// создаётся конфигурация с дефолтными значениями
type PricingConfig struct {
	ID      int64
	OwnerID int64

	// Окно "мёртвых часов" по часам суток [DeadHoursStart, DeadHoursEnd)
	// Может переходить через полночь: start > end означает окно
	// [start, 24) U [0, end)
	DeadHoursStart int
	DeadHoursEnd   int

	// Доля цены, снимаемая при попадании начала бронирования в мёртвые часы, [0, 1]
	DeadHourDiscount float64

	// Базовые ставки за час по категориям услуг
	BaseRatePhysiotherapy    float64
	BaseRatePersonalTraining float64
	BaseRateOther            float64

	// Множители по дню недели (суббота/воскресенье = weekend)
	WeekdayMultiplier float64
	WeekendMultiplier float64

	// IANA-имя часового пояса бизнеса; час суток и день недели для
	// расчёта цены определяются именно в этом поясе
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BaseRateFor возвращает базовую ставку для типа услуги
func (c *PricingConfig) BaseRateFor(service ServiceType) float64 {
	switch service {
	case ServicePhysiotherapy:
		return c.BaseRatePhysiotherapy
	case ServicePersonalTraining:
		return c.BaseRatePersonalTraining
	default:
		return c.BaseRateOther
	}
}

// DeadHoursWrapMidnight возвращает true, если окно мёртвых часов
// переходит через полночь
func (c *PricingConfig) DeadHoursWrapMidnight() bool {
	return c.DeadHoursStart > c.DeadHoursEnd
}

// ContainsDeadHour проверяет, что час суток h (0-23) попадает в окно мёртвых часов
func (c *PricingConfig) ContainsDeadHour(h int) bool {
	if c.DeadHoursStart <= c.DeadHoursEnd {
		return h >= c.DeadHoursStart && h < c.DeadHoursEnd
	}
	// Окно через полночь: [start, 24) U [0, end)
	return h >= c.DeadHoursStart || h < c.DeadHoursEnd
}

// Location загружает часовой пояс конфигурации
func (c *PricingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// PriceBreakdown результат расчёта цены
// Не персистится как сущность - вычисляется заново для каждого запроса,
// промежуточные поля нужны для прозрачности расчёта в UI и аудите
type PriceBreakdown struct {
	BaseRate       float64  // Ставка категории из конфигурации
	EmployeeRate   *float64 // Персональная ставка сотрудника (если задана и > 0)
	FinalBaseRate  float64  // Фактически применённая ставка
	DurationHours  float64  // Длительность в часах (дробная)
	IsDeadHour     bool     // Начало попало в окно мёртвых часов
	TimeMultiplier float64  // Будний/выходной множитель
	BasePrice      float64  // FinalBaseRate * DurationHours * TimeMultiplier
	DiscountAmount float64  // Скидка за мёртвые часы (0, если не применялась)
	FinalPrice     float64  // BasePrice - DiscountAmount, округлено до 2 знаков
}

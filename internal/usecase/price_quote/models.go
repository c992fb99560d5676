package price_quote

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модель запроса на расчёт цены без создания бронирования
type Request struct {
	OwnerID     int64     // ID владельца бизнеса
	LocationID  int64     // ID локации (нужен для персональной ставки сотрудника)
	EmployeeID  *int64    // ID сотрудника (опционально)
	ServiceType string    // Тип услуги
	StartTime   time.Time // Начало окна
	EndTime     time.Time // Конец окна
}

// Response разбивка цены для запрошенного окна
// Полностью повторяет структуру расчёта движка: по ней UI объясняет
// клиенту, из чего сложилась итоговая цена
type Response struct {
	BaseRate       float64  `json:"baseRate"`
	EmployeeRate   *float64 `json:"employeeRate,omitempty"`
	FinalBaseRate  float64  `json:"finalBaseRate"`
	DurationHours  float64  `json:"durationHours"`
	IsDeadHour     bool     `json:"isDeadHour"`
	TimeMultiplier float64  `json:"timeMultiplier"`
	BasePrice      float64  `json:"basePrice"`
	DiscountAmount float64  `json:"discountAmount"`
	FinalPrice     float64  `json:"finalPrice"`
}

// fromBreakdown конвертирует результат движка в ответ
func fromBreakdown(b *domain.PriceBreakdown) *Response {
	return &Response{
		BaseRate:       b.BaseRate,
		EmployeeRate:   b.EmployeeRate,
		FinalBaseRate:  b.FinalBaseRate,
		DurationHours:  b.DurationHours,
		IsDeadHour:     b.IsDeadHour,
		TimeMultiplier: b.TimeMultiplier,
		BasePrice:      b.BasePrice,
		DiscountAmount: b.DiscountAmount,
		FinalPrice:     b.FinalPrice,
	}
}

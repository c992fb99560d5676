package create_booking

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID     int64     // ID владельца бизнеса
	LocationID  int64     // ID локации (филиала)
	RoomID      int64     // ID комнаты/зала
	EmployeeID  *int64    // ID сотрудника (опционально)
	ClientID    int64     // ID клиента
	ServiceType string    // Тип услуги (physiotherapy | personal_training | other)
	StartTime   time.Time // Начало бронирования
	EndTime     time.Time // Конец бронирования (полуинтервал [start, end))
	Notes       *string   // Дополнительные заметки (опционально)
}

// PriceDetails разбивка цены созданного бронирования
type PriceDetails struct {
	BaseRate       float64  // Ставка категории из конфигурации
	EmployeeRate   *float64 // Персональная ставка сотрудника (если применялась)
	FinalBaseRate  float64  // Фактически применённая ставка
	DurationHours  float64  // Длительность в часах
	IsDeadHour     bool     // Начало попало в окно мёртвых часов
	TimeMultiplier float64  // Будний/выходной множитель
	BasePrice      float64  // Цена до скидки
	DiscountAmount float64  // Скидка за мёртвые часы
	FinalPrice     float64  // Итоговая цена
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	OwnerID     int64
	LocationID  int64
	RoomID      int64
	EmployeeID  *int64
	ClientID    int64
	ServiceType string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	Notes       *string

	// Зафиксированный расчёт цены
	Price PriceDetails

	CreatedAt time.Time
	UpdatedAt time.Time
}

// buildResponse собирает ответ из созданного бронирования и разбивки цены
func buildResponse(res *domain.Reservation, breakdown *domain.PriceBreakdown) *Response {
	return &Response{
		ID:          res.ID,
		OwnerID:     res.OwnerID,
		LocationID:  res.LocationID,
		RoomID:      res.RoomID,
		EmployeeID:  res.EmployeeID,
		ClientID:    res.ClientID,
		ServiceType: string(res.ServiceType),
		StartTime:   res.StartTime,
		EndTime:     res.EndTime,
		Status:      string(res.Status),
		Notes:       res.Notes,
		Price: PriceDetails{
			BaseRate:       breakdown.BaseRate,
			EmployeeRate:   breakdown.EmployeeRate,
			FinalBaseRate:  breakdown.FinalBaseRate,
			DurationHours:  breakdown.DurationHours,
			IsDeadHour:     breakdown.IsDeadHour,
			TimeMultiplier: breakdown.TimeMultiplier,
			BasePrice:      breakdown.BasePrice,
			DiscountAmount: breakdown.DiscountAmount,
			FinalPrice:     breakdown.FinalPrice,
		},
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}

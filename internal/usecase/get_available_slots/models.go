package get_available_slots

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модель запроса сетки слотов комнаты на дату
type Request struct {
	OwnerID         int64     // ID владельца бизнеса
	RoomID          int64     // ID комнаты
	Date            time.Time // Календарная дата (время игнорируется)
	DurationMinutes int       // Длительность слота; 0 = дефолтные 60 минут
}

// Slot один слот сетки
type Slot struct {
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

// Response сетка слотов на дату
type Response struct {
	RoomID          int64  `json:"roomId"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// fromDomainSlots конвертирует слоты domain-модели в ответ
func fromDomainSlots(roomID int64, date time.Time, durationMinutes int, slots []domain.AvailabilitySlot) *Response {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		})
	}

	return &Response{
		RoomID:          roomID,
		Date:            date.Format(domain.DateFormat),
		DurationMinutes: durationMinutes,
		Slots:           out,
	}
}

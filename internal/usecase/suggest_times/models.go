package suggest_times

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модель запроса альтернативных свободных слотов
type Request struct {
	OwnerID         int64     // ID владельца бизнеса
	RoomID          int64     // ID комнаты
	PreferredDate   time.Time // Дата, с которой начинается поиск
	DurationMinutes int       // Длительность слота; 0 = дефолтные 60 минут
	DaysToCheck     int       // Глубина поиска в днях; 0 = дефолтные 7
}

// Suggestion один предложенный свободный слот
type Suggestion struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Response предложенные альтернативы в хронологическом порядке
type Response struct {
	RoomID      int64        `json:"roomId"`
	Suggestions []Suggestion `json:"suggestions"`
}

// fromDomainSlots конвертирует свободные слоты в ответ
func fromDomainSlots(roomID int64, slots []domain.AvailabilitySlot) *Response {
	out := make([]Suggestion, 0, len(slots))
	for _, s := range slots {
		out = append(out, Suggestion{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	return &Response{
		RoomID:      roomID,
		Suggestions: out,
	}
}

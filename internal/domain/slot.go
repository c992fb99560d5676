package domain

import "time"

// AvailabilitySlot represents a candidate time window evaluated for booking
// Эфемерная модель: генерируется на каждый запрос, жизненного цикла в БД не имеет
type AvailabilitySlot struct {
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
	EmployeeID  *int64 // Заполняется при подборе слотов конкретного сотрудника
}

// Duration возвращает длительность слота
func (s *AvailabilitySlot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Overlaps проверяет пересечение слота с окном [start, end)
// по тому же правилу полуинтервалов, что и Reservation.Overlaps
func (s *AvailabilitySlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

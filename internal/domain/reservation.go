package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ServiceType категория бронируемой услуги
type ServiceType string

const (
	ServicePhysiotherapy    ServiceType = "physiotherapy"
	ServicePersonalTraining ServiceType = "personal_training"
	ServiceOther            ServiceType = "other"
)

// IsValid проверяет, что тип услуги входит в известный набор
// Неизвестные типы отклоняются на этапе валидации, "other" - это
// всегда явная категория, а не fallback
func (s ServiceType) IsValid() bool {
	switch s {
	case ServicePhysiotherapy, ServicePersonalTraining, ServiceOther:
		return true
	default:
		return false
	}
}

// EmployeeType специализация сотрудника
type EmployeeType string

const (
	EmployeePhysiotherapist EmployeeType = "physiotherapist"
	EmployeeTrainer         EmployeeType = "personal_trainer"
	EmployeeOther           EmployeeType = "other"
)

// CompatibleWith проверяет, что сотрудник может выполнять услугу указанного типа
// physiotherapy -> physiotherapist, personal_training -> personal_trainer,
// other -> любая специализация
func (e EmployeeType) CompatibleWith(service ServiceType) bool {
	switch service {
	case ServicePhysiotherapy:
		return e == EmployeePhysiotherapist
	case ServicePersonalTraining:
		return e == EmployeeTrainer
	case ServiceOther:
		return true
	default:
		return false
	}
}

// Reservation represents a confirmed slot of a room (and optionally an employee)
// Временное окно полуинтервальное: [StartTime, EndTime)
type Reservation struct {
	ID         int64
	OwnerID    int64
	LocationID int64
	RoomID     int64
	EmployeeID *int64 // NULL = бронирование без привязки к сотруднику
	ClientID   int64

	ServiceType ServiceType
	StartTime   time.Time
	EndTime     time.Time
	Status      ReservationStatus

	// Денормализованный результат расчёта цены на момент бронирования
	FinalPrice float64
	IsDeadHour bool

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts toward conflicts
// Завершённые бронирования продолжают занимать своё окно в прошлом,
// из конфликтов исключаются только отменённые
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Overlaps проверяет пересечение с окном [start, end) по правилу полуинтервалов:
// пересечение есть только при aStart < bEnd && aEnd > bStart,
// соприкосновение границ (aEnd == bStart) пересечением НЕ считается
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// RoomReservationsFilter фильтр для выборки бронирований комнаты
type RoomReservationsFilter struct {
	RoomID          int64              // Обязательный параметр
	WindowStart     *time.Time         // Начало окна (опционально)
	WindowEnd       *time.Time         // Конец окна (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}

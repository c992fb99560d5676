package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownServiceType возвращается для типа услуги вне известного набора
	ErrUnknownServiceType = errors.New("create_booking: unknown service type")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrDateInPast возвращается при попытке забронировать время в прошлом
	ErrDateInPast = errors.New("create_booking: start time is in the past")

	// ErrRoomNotAvailable возвращается, когда комната занята в запрошенном окне
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден на локации
	ErrEmployeeNotFound = errors.New("create_booking: employee not found at location")

	// ErrEmployeeIncompatible возвращается, когда специализация сотрудника
	// не соответствует типу услуги
	ErrEmployeeIncompatible = errors.New("create_booking: employee is not compatible with service type")

	// ErrEmployeeNotAvailable возвращается, когда сотрудник занят в запрошенном окне
	ErrEmployeeNotAvailable = errors.New("create_booking: employee is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

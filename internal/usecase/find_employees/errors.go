package find_employees

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_employees: invalid input data")

	// ErrUnknownServiceType возвращается для типа услуги вне известного набора
	ErrUnknownServiceType = errors.New("find_employees: unknown service type")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("find_employees: end time must be after start time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_employees: internal error")
)

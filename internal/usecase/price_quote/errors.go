package price_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("price_quote: invalid input data")

	// ErrUnknownServiceType возвращается для типа услуги вне известного набора
	ErrUnknownServiceType = errors.New("price_quote: unknown service type")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("price_quote: end time must be after start time")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("price_quote: employee not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("price_quote: internal error")
)

package availability

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("availability: end time must be after start time")

	// ErrInvalidDuration возвращается при недопустимой длительности слота
	ErrInvalidDuration = errors.New("availability: invalid slot duration")

	// ErrInvalidDaysToCheck возвращается при недопустимой глубине поиска альтернатив
	ErrInvalidDaysToCheck = errors.New("availability: invalid days to check")

	// ErrUnknownServiceType возвращается для типа услуги вне известного набора
	ErrUnknownServiceType = errors.New("availability: unknown service type")

	// ErrInternal возвращается при внутренних ошибках проверки доступности
	ErrInternal = errors.New("availability: internal error")
)

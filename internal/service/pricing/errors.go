package pricing

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("pricing: end time must be after start time")

	// ErrUnknownServiceType возвращается для типа услуги вне известного набора
	// Неизвестные типы отклоняются, а не приводятся к "other"
	ErrUnknownServiceType = errors.New("pricing: unknown service type")

	// ErrInvalidConfig возвращается при расчёте по некорректной конфигурации
	// (например, незагружаемый часовой пояс)
	ErrInvalidConfig = errors.New("pricing: invalid pricing config")
)

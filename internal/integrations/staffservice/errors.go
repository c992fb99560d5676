package staffservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("staffservice client: employee not found")

	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("staffservice client: location not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что StaffService недоступен и следует использовать базовые ставки
	ErrServiceDegraded = errors.New("staffservice unavailable: graceful degradation applied")
)

package suggest_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_times: invalid input data")

	// ErrInvalidDuration возвращается при недопустимой длительности слота
	ErrInvalidDuration = errors.New("suggest_times: invalid slot duration")

	// ErrInvalidDaysToCheck возвращается при недопустимой глубине поиска
	ErrInvalidDaysToCheck = errors.New("suggest_times: invalid days to check")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_times: internal error")
)

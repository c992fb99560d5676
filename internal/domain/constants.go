package domain

// Рабочее окно бизнес-дня для генерации слотов
// TODO: вынести в конфигурацию владельца, сейчас окно фиксировано для всех
const (
	BusinessDayStartHour = 8  // 08:00
	BusinessDayEndHour   = 20 // 20:00

	SlotStepMinutes            = 30 // Шаг сетки кандидатов
	DefaultSlotDurationMinutes = 60
)

// Ограничения поиска альтернативного времени
const (
	DefaultDaysToCheck   = 7  // Сколько дней сканировать от предпочитаемой даты
	MaxSuggestionsPerDay = 3  // Не больше трёх свободных слотов с одного дня
	MaxTotalSuggestions  = 10 // Общий лимит подсказок, сканирование останавливается досрочно
	MaxDaysToCheck       = 31
	MaxDurationMinutes   = 480 // 8 часов
	MinDurationMinutes   = 15
)

// Дефолтные значения конфигурации цен
// Используются при ленивом создании конфигурации владельца
const (
	DefaultDeadHoursStart   = 0
	DefaultDeadHoursEnd     = 0 // start == end -> пустое окно, скидка не применяется
	DefaultDeadHourDiscount = 0.0

	DefaultBaseRatePhysiotherapy    = 100.0
	DefaultBaseRatePersonalTraining = 80.0
	DefaultBaseRateOther            = 60.0

	DefaultWeekdayMultiplier = 1.0
	DefaultWeekendMultiplier = 1.0

	DefaultTimezone = "UTC"
)

// Границы валидации конфигурации цен
const (
	MinHourOfDay = 0
	MaxHourOfDay = 23

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
// Только отменённые бронирования освобождают своё окно
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих своё временное окно
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// GetAvailableSlots возвращает сетку слотов комнаты на указанную дату
//
// Кандидаты генерируются с шагом domain.SlotStepMinutes от начала рабочего
// дня (08:00), пока конец слота не выходит за его границу (20:00):
// последний 60-минутный слот начинается в 19:00, последний 30-минутный - в 19:30.
// Часовой пояс берётся из date.Location() - вызывающая сторона передаёт
// календарную дату уже в поясе бизнеса.
//
// Возвращаются ВСЕ кандидаты в хронологическом порядке, занятые помечаются
// IsAvailable=false
func (c *Checker) GetAvailableSlots(
	ctx context.Context,
	roomID int64,
	date time.Time,
	durationMinutes int,
) ([]domain.AvailabilitySlot, error) {
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidDuration, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	dayStart, dayEnd := businessDayWindow(date)

	// Одна выборка на весь рабочий день, дальше проверка в памяти
	reservations, err := c.reservationRepo.GetByRoomAndWindow(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		c.logger.Error("GetAvailableSlots: failed to fetch reservations for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to fetch reservations: %v", ErrInternal, err)
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := domain.SlotStepMinutes * time.Minute

	slots := make([]domain.AvailabilitySlot, 0)
	for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(step) {
		end := start.Add(duration)
		slots = append(slots, domain.AvailabilitySlot{
			StartTime:   start,
			EndTime:     end,
			IsAvailable: !anyActiveOverlap(reservations, start, end),
		})
	}

	return slots, nil
}

// SuggestAlternativeTimes ищет свободные слоты, начиная с предпочитаемой даты
//
// Сканируется daysToCheck последовательных дней; с каждого дня берётся не
// больше domain.MaxSuggestionsPerDay свободных слотов, общий результат
// ограничен domain.MaxTotalSuggestions - при достижении лимита сканирование
// останавливается досрочно. Порядок хронологический.
func (c *Checker) SuggestAlternativeTimes(
	ctx context.Context,
	roomID int64,
	preferredDate time.Time,
	durationMinutes int,
	daysToCheck int,
) ([]domain.AvailabilitySlot, error) {
	if daysToCheck <= 0 {
		daysToCheck = domain.DefaultDaysToCheck
	}
	if daysToCheck > domain.MaxDaysToCheck {
		return nil, fmt.Errorf("%w: daysToCheck must not exceed %d", ErrInvalidDaysToCheck, domain.MaxDaysToCheck)
	}

	suggestions := make([]domain.AvailabilitySlot, 0, domain.MaxTotalSuggestions)

	for day := 0; day < daysToCheck; day++ {
		date := preferredDate.AddDate(0, 0, day)

		slots, err := c.GetAvailableSlots(ctx, roomID, date, durationMinutes)
		if err != nil {
			return nil, err
		}

		perDay := 0
		for _, slot := range slots {
			if !slot.IsAvailable {
				continue
			}
			suggestions = append(suggestions, slot)
			perDay++

			if len(suggestions) >= domain.MaxTotalSuggestions {
				c.logger.Info("SuggestAlternativeTimes: room=%d: suggestion cap reached on day %d",
					roomID, day)
				return suggestions, nil
			}
			if perDay >= domain.MaxSuggestionsPerDay {
				break
			}
		}
	}

	c.logger.Info("SuggestAlternativeTimes: room=%d: %d suggestions over %d days",
		roomID, len(suggestions), daysToCheck)

	return suggestions, nil
}

// businessDayWindow возвращает границы рабочего дня [08:00, 20:00)
// в часовом поясе переданной даты
func businessDayWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	loc := date.Location()
	dayStart := time.Date(y, m, d, domain.BusinessDayStartHour, 0, 0, 0, loc)
	dayEnd := time.Date(y, m, d, domain.BusinessDayEndHour, 0, 0, 0, loc)
	return dayStart, dayEnd
}

// anyActiveOverlap проверяет пересечение окна [start, end) хотя бы с одним
// активным бронированием
func anyActiveOverlap(reservations []*domain.Reservation, start, end time.Time) bool {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.Overlaps(start, end) {
			return true
		}
	}
	return false
}

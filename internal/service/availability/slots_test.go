package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2025, 10, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func onDay(dayOfMonth, hour, minute int) time.Time {
	return time.Date(2025, 10, dayOfMonth, hour, minute, 0, 0, time.UTC)
}

func TestGetAvailableSlots_GridSize(t *testing.T) {
	checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

	tests := []struct {
		name            string
		durationMinutes int
		wantCount       int
		wantLastStart   time.Time
	}{
		{
			// 08:00..19:30 с шагом 30 минут
			name:            "30 minute slots fill the whole day",
			durationMinutes: 30,
			wantCount:       24,
			wantLastStart:   onDay(14, 19, 30),
		},
		{
			// Последний час начинается в 19:00, чтобы уложиться до 20:00
			name:            "60 minute slots",
			durationMinutes: 60,
			wantCount:       23,
			wantLastStart:   onDay(14, 19, 0),
		},
		{
			name:            "90 minute slots",
			durationMinutes: 90,
			wantCount:       22,
			wantLastStart:   onDay(14, 18, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := checker.GetAvailableSlots(context.Background(), 1, day(14), tt.durationMinutes)
			require.NoError(t, err)

			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, onDay(14, 8, 0), slots[0].StartTime)
			assert.Equal(t, tt.wantLastStart, slots[len(slots)-1].StartTime)

			for _, slot := range slots {
				assert.True(t, slot.IsAvailable)
				assert.Equal(t, time.Duration(tt.durationMinutes)*time.Minute, slot.EndTime.Sub(slot.StartTime))
			}
		})
	}
}

func TestGetAvailableSlots_MarksOccupied(t *testing.T) {
	// Занято 10:00-11:00
	repo := &mockReservationRepo{
		roomReservations: map[int64][]*domain.Reservation{
			1: {reservation(1, onDay(14, 10, 0), onDay(14, 11, 0), domain.StatusConfirmed)},
		},
	}
	checker := NewChecker(repo, &mockStaffClient{}, nopLogger{})

	slots, err := checker.GetAvailableSlots(context.Background(), 1, day(14), 60)
	require.NoError(t, err)
	require.Len(t, slots, 23)

	unavailable := make(map[string]bool)
	for _, slot := range slots {
		if !slot.IsAvailable {
			unavailable[slot.StartTime.Format("15:04")] = true
		}
	}

	// Часовой слот пересекает [10:00, 11:00), если начинается в 09:30, 10:00 или 10:30
	assert.Equal(t, map[string]bool{"09:30": true, "10:00": true, "10:30": true}, unavailable)
}

func TestGetAvailableSlots_InvalidDuration(t *testing.T) {
	checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

	_, err := checker.GetAvailableSlots(context.Background(), 1, day(14), 10)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = checker.GetAvailableSlots(context.Background(), 1, day(14), 481)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSuggestAlternativeTimes(t *testing.T) {
	t.Run("takes at most three slots per day and ten total", func(t *testing.T) {
		// Все дни полностью свободны
		checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

		suggestions, err := checker.SuggestAlternativeTimes(context.Background(), 1, day(14), 60, 7)
		require.NoError(t, err)

		require.Len(t, suggestions, domain.MaxTotalSuggestions)

		// 3 слота с первого дня, 3 со второго, 3 с третьего, 1 с четвертого
		perDay := make(map[int]int)
		for _, s := range suggestions {
			perDay[s.StartTime.Day()]++
		}
		assert.Equal(t, map[int]int{14: 3, 15: 3, 16: 3, 17: 1}, perDay)

		// Хронологический порядок
		for i := 1; i < len(suggestions); i++ {
			assert.True(t, suggestions[i].StartTime.After(suggestions[i-1].StartTime))
		}
	})

	t.Run("skips busy windows", func(t *testing.T) {
		// Первые два утренних слота заняты
		repo := &mockReservationRepo{
			roomReservations: map[int64][]*domain.Reservation{
				1: {reservation(1, onDay(14, 8, 0), onDay(14, 9, 0), domain.StatusConfirmed)},
			},
		}
		checker := NewChecker(repo, &mockStaffClient{}, nopLogger{})

		suggestions, err := checker.SuggestAlternativeTimes(context.Background(), 1, day(14), 60, 1)
		require.NoError(t, err)

		require.Len(t, suggestions, domain.MaxSuggestionsPerDay)
		// 08:00 и 08:30 недоступны, первое предложение - 09:00
		assert.Equal(t, onDay(14, 9, 0), suggestions[0].StartTime)
	})

	t.Run("fully booked horizon yields no suggestions", func(t *testing.T) {
		repo := &mockReservationRepo{
			roomReservations: map[int64][]*domain.Reservation{
				1: {
					reservation(1, onDay(14, 8, 0), onDay(14, 20, 0), domain.StatusConfirmed),
					reservation(1, onDay(15, 8, 0), onDay(15, 20, 0), domain.StatusConfirmed),
				},
			},
		}
		checker := NewChecker(repo, &mockStaffClient{}, nopLogger{})

		suggestions, err := checker.SuggestAlternativeTimes(context.Background(), 1, day(14), 60, 2)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("zero days falls back to default horizon", func(t *testing.T) {
		checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

		suggestions, err := checker.SuggestAlternativeTimes(context.Background(), 1, day(14), 60, 0)
		require.NoError(t, err)
		assert.Len(t, suggestions, domain.MaxTotalSuggestions)
	})

	t.Run("horizon above limit is rejected", func(t *testing.T) {
		checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

		_, err := checker.SuggestAlternativeTimes(context.Background(), 1, day(14), 60, domain.MaxDaysToCheck+1)
		assert.ErrorIs(t, err, ErrInvalidDaysToCheck)
	})
}

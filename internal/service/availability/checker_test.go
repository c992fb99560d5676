package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
)

// mockReservationRepo хранит бронирования в памяти и отдаёт пересекающиеся с окном
type mockReservationRepo struct {
	roomReservations     map[int64][]*domain.Reservation
	employeeReservations map[int64][]*domain.Reservation
	err                  error
}

func (m *mockReservationRepo) GetByRoomAndWindow(_ context.Context, roomID int64, start, end time.Time) ([]*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return overlapping(m.roomReservations[roomID], start, end), nil
}

func (m *mockReservationRepo) GetByEmployeeAndWindow(_ context.Context, employeeID int64, start, end time.Time) ([]*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return overlapping(m.employeeReservations[employeeID], start, end), nil
}

// overlapping воспроизводит SQL фильтр репозитория: полуинтервалы, без отменённых
func overlapping(reservations []*domain.Reservation, start, end time.Time) []*domain.Reservation {
	var out []*domain.Reservation
	for _, r := range reservations {
		if r.Status == domain.StatusCancelled {
			continue
		}
		if r.StartTime.Before(end) && r.EndTime.After(start) {
			out = append(out, r)
		}
	}
	return out
}

type mockStaffClient struct {
	employees []staffservice.Employee
	err       error
}

func (m *mockStaffClient) GetEmployeesByLocation(_ context.Context, _ int64) ([]staffservice.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employees, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservation(roomID int64, start, end time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		RoomID:      roomID,
		ClientID:    100,
		ServiceType: domain.ServicePhysiotherapy,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 14, hour, minute, 0, 0, time.UTC)
}

func TestIsAvailable(t *testing.T) {
	existing := reservation(1, at(10, 0), at(11, 0), domain.StatusConfirmed)

	tests := []struct {
		name     string
		existing []*domain.Reservation
		start    time.Time
		end      time.Time
		want     bool
	}{
		{
			name:  "empty room is available",
			start: at(10, 0), end: at(11, 0),
			want: true,
		},
		{
			name:     "exact overlap blocks",
			existing: []*domain.Reservation{existing},
			start:    at(10, 0), end: at(11, 0),
			want: false,
		},
		{
			name:     "partial overlap blocks",
			existing: []*domain.Reservation{existing},
			start:    at(10, 30), end: at(11, 30),
			want: false,
		},
		{
			name:     "containing window blocks",
			existing: []*domain.Reservation{existing},
			start:    at(9, 0), end: at(12, 0),
			want: false,
		},
		{
			name:     "back-to-back after existing is available",
			existing: []*domain.Reservation{existing},
			start:    at(11, 0), end: at(12, 0),
			want: true,
		},
		{
			name:     "back-to-back before existing is available",
			existing: []*domain.Reservation{existing},
			start:    at(9, 0), end: at(10, 0),
			want: true,
		},
		{
			name:     "cancelled reservation frees the slot",
			existing: []*domain.Reservation{reservation(1, at(10, 0), at(11, 0), domain.StatusCancelled)},
			start:    at(10, 0), end: at(11, 0),
			want: true,
		},
		{
			name:     "completed reservation still blocks",
			existing: []*domain.Reservation{reservation(1, at(10, 0), at(11, 0), domain.StatusCompleted)},
			start:    at(10, 0), end: at(11, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReservationRepo{
				roomReservations: map[int64][]*domain.Reservation{1: tt.existing},
			}
			checker := NewChecker(repo, &mockStaffClient{}, nopLogger{})

			got, err := checker.IsAvailable(context.Background(), 1, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAvailable_InvalidRange(t *testing.T) {
	checker := NewChecker(&mockReservationRepo{}, &mockStaffClient{}, nopLogger{})

	_, err := checker.IsAvailable(context.Background(), 1, at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = checker.IsAvailable(context.Background(), 1, at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCheckEmployeeAvailability(t *testing.T) {
	busy := &domain.Reservation{
		EmployeeID: ptrInt64(7),
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		Status:     domain.StatusConfirmed,
	}
	repo := &mockReservationRepo{
		employeeReservations: map[int64][]*domain.Reservation{7: {busy}},
	}
	checker := NewChecker(repo, &mockStaffClient{}, nopLogger{})

	free, err := checker.CheckEmployeeAvailability(context.Background(), 7, at(10, 30), at(11, 30))
	require.NoError(t, err)
	assert.False(t, free)

	free, err = checker.CheckEmployeeAvailability(context.Background(), 7, at(11, 0), at(12, 0))
	require.NoError(t, err)
	assert.True(t, free)

	// У другого сотрудника бронирований нет
	free, err = checker.CheckEmployeeAvailability(context.Background(), 8, at(10, 0), at(11, 0))
	require.NoError(t, err)
	assert.True(t, free)
}

func TestGetAvailableEmployees(t *testing.T) {
	employees := []staffservice.Employee{
		{ID: 1, Name: "Анна", Type: domain.EmployeePhysiotherapist, IsActive: true},
		{ID: 2, Name: "Борис", Type: domain.EmployeeTrainer, IsActive: true},
		{ID: 3, Name: "Вера", Type: domain.EmployeePhysiotherapist, IsActive: false},
		{ID: 4, Name: "Глеб", Type: domain.EmployeePhysiotherapist, IsActive: true},
	}

	// Сотрудник 4 занят в проверяемом окне
	repo := &mockReservationRepo{
		employeeReservations: map[int64][]*domain.Reservation{
			4: {{EmployeeID: ptrInt64(4), StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusConfirmed}},
		},
	}
	checker := NewChecker(repo, &mockStaffClient{employees: employees}, nopLogger{})

	t.Run("filters by specialization, activity and schedule", func(t *testing.T) {
		got, err := checker.GetAvailableEmployees(
			context.Background(), 1, domain.ServicePhysiotherapy, at(10, 0), at(11, 0))
		require.NoError(t, err)

		// Борис - тренер, Вера неактивна, Глеб занят
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("other service accepts any specialization", func(t *testing.T) {
		got, err := checker.GetAvailableEmployees(
			context.Background(), 1, domain.ServiceOther, at(12, 0), at(13, 0))
		require.NoError(t, err)

		// Окно свободно для всех, исключается только неактивная Вера
		require.Len(t, got, 3)
		// Порядок справочника сохраняется
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, int64(4), got[2].ID)
	})

	t.Run("unknown service type is rejected", func(t *testing.T) {
		_, err := checker.GetAvailableEmployees(
			context.Background(), 1, "massage", at(10, 0), at(11, 0))
		assert.ErrorIs(t, err, ErrUnknownServiceType)
	})

	t.Run("invalid range is rejected", func(t *testing.T) {
		_, err := checker.GetAvailableEmployees(
			context.Background(), 1, domain.ServicePhysiotherapy, at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func ptrInt64(v int64) *int64 {
	return &v
}

package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SBM-BookingService/internal/service/reservations/models"
)

type mockRepo struct {
	reservations map[int64]*domain.Reservation
	cancelled    map[int64]string
}

func newMockRepo(reservations ...*domain.Reservation) *mockRepo {
	m := &mockRepo{
		reservations: make(map[int64]*domain.Reservation),
		cancelled:    make(map[int64]string),
	}
	for _, r := range reservations {
		m.reservations[r.ID] = r
	}
	return m
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := m.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (m *mockRepo) GetByClientID(_ context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.reservations {
		if r.ClientID != clientID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.reservations {
		if r.RoomID != filter.RoomID {
			continue
		}
		if !filter.IncludeInactive && r.IsCancelled() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := m.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.cancelled[id] = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		wantErr error
	}{
		{"confirmed can be cancelled", domain.StatusConfirmed, nil},
		{"completed cannot be cancelled", domain.StatusCompleted, ErrCannotCancel},
		{"cancelled cannot be cancelled twice", domain.StatusCancelled, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo(&domain.Reservation{ID: 1, Status: tt.status})
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 1, "клиент заболел")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.cancelled)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "клиент заболел", repo.cancelled[1])
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newMockRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 42, "")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := newMockRepo(&domain.Reservation{ID: 1, Status: domain.StatusConfirmed})
	svc := NewService(repo, nopLogger{})

	reason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range reason {
		reason[i] = 'a'
	}

	err := svc.Cancel(context.Background(), 1, string(reason))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.cancelled)
}

func TestGetByID(t *testing.T) {
	repo := newMockRepo(&domain.Reservation{
		ID:          1,
		ClientID:    100,
		ServiceType: domain.ServicePhysiotherapy,
		Status:      domain.StatusConfirmed,
		FinalPrice:  120,
		IsDeadHour:  true,
	})
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, string(domain.ServicePhysiotherapy), got.ServiceType)
	assert.Equal(t, 120.0, got.FinalPrice)
	assert.True(t, got.IsDeadHour)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByRoom_ValidatesWindow(t *testing.T) {
	svc := NewService(newMockRepo(), nopLogger{})

	start := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.GetByRoom(context.Background(), &models.RoomReservationsRequest{
		RoomID:      1,
		WindowStart: &start,
		WindowEnd:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByRoom_ExcludesCancelledByDefault(t *testing.T) {
	repo := newMockRepo(
		&domain.Reservation{ID: 1, RoomID: 5, Status: domain.StatusConfirmed},
		&domain.Reservation{ID: 2, RoomID: 5, Status: domain.StatusCancelled},
	)
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByRoom(context.Background(), &models.RoomReservationsRequest{RoomID: 5})
	require.NoError(t, err)
	assert.Len(t, got.Reservations, 1)
	assert.Equal(t, int64(1), got.Reservations[0].ID)

	got, err = svc.GetByRoom(context.Background(), &models.RoomReservationsRequest{RoomID: 5, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, got.Reservations, 2)
}

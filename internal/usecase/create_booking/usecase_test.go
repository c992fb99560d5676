package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	staffClient "github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/SBM-BookingService/internal/service/pricing"
	"github.com/m04kA/SBM-BookingService/pkg/ptr"
)

type mockReservationRepo struct {
	roomReservations     []*domain.Reservation
	employeeReservations []*domain.Reservation
	created              *domain.Reservation
	nextID               int64
}

func (m *mockReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	copied := *res
	copied.ID = m.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	m.created = &copied
	return &copied, nil
}

func (m *mockReservationRepo) GetByRoomAndWindow(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return m.roomReservations, nil
}

func (m *mockReservationRepo) GetByEmployeeAndWindow(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return m.employeeReservations, nil
}

type mockPricingConfig struct {
	cfg *domain.PricingConfig
}

func (m *mockPricingConfig) GetDomain(context.Context, int64) (*domain.PricingConfig, error) {
	return m.cfg, nil
}

type mockStaffClient struct {
	employees []staffClient.Employee
	rate      *float64
	rateErr   error
}

func (m *mockStaffClient) GetEmployeesByLocation(context.Context, int64) ([]staffClient.Employee, error) {
	return m.employees, nil
}

func (m *mockStaffClient) GetHourlyRateWithGracefulDegradation(context.Context, int64, int64) (*float64, error) {
	return m.rate, m.rateErr
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.PricingConfig {
	return &domain.PricingConfig{
		ID:                       1,
		OwnerID:                  1,
		DeadHoursStart:           8,
		DeadHoursEnd:             16,
		DeadHourDiscount:         0.2,
		BaseRatePhysiotherapy:    150,
		BaseRatePersonalTraining: 100,
		BaseRateOther:            60,
		WeekdayMultiplier:        1.0,
		WeekendMultiplier:        1.2,
		Timezone:                 "UTC",
	}
}

// 2025-10-14 - вторник
var (
	testNow   = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
	slotStart = time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2025, 10, 14, 11, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *mockReservationRepo, staff *mockStaffClient) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		repo,
		&mockPricingConfig{cfg: testConfig()},
		pricing.NewEngine(),
		staff,
		txMgr,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	return uc, txMgr
}

func validRequest() *Request {
	return &Request{
		OwnerID:     1,
		LocationID:  1,
		RoomID:      5,
		ClientID:    100,
		ServiceType: string(domain.ServicePhysiotherapy),
		StartTime:   slotStart,
		EndTime:     slotEnd,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockReservationRepo{nextID: 77}
	uc, txMgr := newTestUseCase(repo, &mockStaffClient{})

	got, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(77), got.ID)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	// Вторник 10:00 - мёртвый час: 150 - 20% = 120
	assert.Equal(t, 120.0, got.Price.FinalPrice)
	assert.True(t, got.Price.IsDeadHour)
	assert.Equal(t, 1, txMgr.calls)

	require.NotNil(t, repo.created)
	assert.Equal(t, 120.0, repo.created.FinalPrice)
	assert.True(t, repo.created.IsDeadHour)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_RoomConflict(t *testing.T) {
	repo := &mockReservationRepo{
		roomReservations: []*domain.Reservation{
			{RoomID: 5, StartTime: slotStart, EndTime: slotEnd, Status: domain.StatusConfirmed},
		},
	}
	uc, _ := newTestUseCase(repo, &mockStaffClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	repo := &mockReservationRepo{
		nextID: 1,
		roomReservations: []*domain.Reservation{
			{RoomID: 5, StartTime: slotStart, EndTime: slotEnd, Status: domain.StatusCancelled},
		},
	}
	uc, _ := newTestUseCase(repo, &mockStaffClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_WithEmployee(t *testing.T) {
	employee := staffClient.Employee{
		ID:       7,
		Name:     "Анна",
		Type:     domain.EmployeePhysiotherapist,
		IsActive: true,
	}

	t.Run("personal rate overrides base rate", func(t *testing.T) {
		repo := &mockReservationRepo{nextID: 1}
		staff := &mockStaffClient{employees: []staffClient.Employee{employee}, rate: ptr.Ptr(200.0)}
		uc, _ := newTestUseCase(repo, staff)

		req := validRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		got, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		// 200/час в мёртвый час: 200 - 20% = 160
		assert.Equal(t, 160.0, got.Price.FinalPrice)
		assert.Equal(t, 200.0, got.Price.FinalBaseRate)
	})

	t.Run("employee busy in window", func(t *testing.T) {
		repo := &mockReservationRepo{
			employeeReservations: []*domain.Reservation{
				{EmployeeID: ptr.Ptr(int64(7)), StartTime: slotStart, EndTime: slotEnd, Status: domain.StatusConfirmed},
			},
		}
		staff := &mockStaffClient{employees: []staffClient.Employee{employee}}
		uc, _ := newTestUseCase(repo, staff)

		req := validRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotAvailable)
	})

	t.Run("employee not found at location", func(t *testing.T) {
		repo := &mockReservationRepo{nextID: 1}
		staff := &mockStaffClient{employees: nil}
		uc, _ := newTestUseCase(repo, staff)

		req := validRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("trainer cannot serve physiotherapy", func(t *testing.T) {
		trainer := employee
		trainer.Type = domain.EmployeeTrainer

		repo := &mockReservationRepo{nextID: 1}
		staff := &mockStaffClient{employees: []staffClient.Employee{trainer}}
		uc, _ := newTestUseCase(repo, staff)

		req := validRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeIncompatible)
	})

	t.Run("degraded staff service falls back to base rate", func(t *testing.T) {
		repo := &mockReservationRepo{nextID: 1}
		staff := &mockStaffClient{
			employees: []staffClient.Employee{employee},
			rateErr:   staffClient.ErrServiceDegraded,
		}
		uc, _ := newTestUseCase(repo, staff)

		req := validRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		got, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		// Базовая ставка 150 в мёртвый час: 150 - 20% = 120
		assert.Equal(t, 120.0, got.Price.FinalPrice)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&mockReservationRepo{}, &mockStaffClient{})

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "unknown service type",
			mutate:  func(req *Request) { req.ServiceType = "massage" },
			wantErr: ErrUnknownServiceType,
		},
		{
			name:    "end before start",
			mutate:  func(req *Request) { req.StartTime, req.EndTime = req.EndTime, req.StartTime },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "start in the past",
			mutate: func(req *Request) {
				req.StartTime = testNow.Add(-2 * time.Hour)
				req.EndTime = testNow.Add(-time.Hour)
			},
			wantErr: ErrDateInPast,
		},
		{
			name:    "zero room id",
			mutate:  func(req *Request) { req.RoomID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "duration too short",
			mutate: func(req *Request) {
				req.EndTime = req.StartTime.Add(10 * time.Minute)
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

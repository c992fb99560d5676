package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/ptr"
)

// baseConfig конфигурация из типового кабинета физиотерапии:
// мёртвые часы 8-16 со скидкой 20%, выходные дороже на 20%
func baseConfig() *domain.PricingConfig {
	return &domain.PricingConfig{
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

// 2025-10-14 - вторник, 2025-10-18 - суббота
func tuesdayAt(hour int) time.Time {
	return time.Date(2025, 10, 14, hour, 0, 0, 0, time.UTC)
}

func saturdayAt(hour int) time.Time {
	return time.Date(2025, 10, 18, hour, 0, 0, 0, time.UTC)
}

func TestCalculatePrice(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name         string
		cfg          *domain.PricingConfig
		req          Request
		employeeRate *float64

		wantFinalPrice     float64
		wantBasePrice      float64
		wantDiscountAmount float64
		wantIsDeadHour     bool
		wantMultiplier     float64
	}{
		{
			name: "weekday dead hour gets discount",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(10),
				EndTime:     tuesdayAt(11),
			},
			wantFinalPrice:     120,
			wantBasePrice:      150,
			wantDiscountAmount: 30,
			wantIsDeadHour:     true,
			wantMultiplier:     1.0,
		},
		{
			name: "weekday outside dead hours full price",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(18),
				EndTime:     tuesdayAt(19),
			},
			wantFinalPrice:     150,
			wantBasePrice:      150,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
		{
			name: "weekend multiplier applied before discount",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   saturdayAt(10),
				EndTime:     saturdayAt(11),
			},
			wantFinalPrice:     144,
			wantBasePrice:      180,
			wantDiscountAmount: 36,
			wantIsDeadHour:     true,
			wantMultiplier:     1.2,
		},
		{
			name: "fractional duration",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(18),
				EndTime:     tuesdayAt(18).Add(90 * time.Minute),
			},
			wantFinalPrice:     225,
			wantBasePrice:      225,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
		{
			name: "dead hour by start only, end outside window",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(15),
				EndTime:     tuesdayAt(17),
			},
			wantFinalPrice:     240,
			wantBasePrice:      300,
			wantDiscountAmount: 60,
			wantIsDeadHour:     true,
			wantMultiplier:     1.0,
		},
		{
			name: "start at dead hours end is not a dead hour",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(16),
				EndTime:     tuesdayAt(17),
			},
			wantFinalPrice:     150,
			wantBasePrice:      150,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
		{
			name: "employee rate overrides base rate",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(18),
				EndTime:     tuesdayAt(19),
			},
			employeeRate:       ptr.Ptr(200.0),
			wantFinalPrice:     200,
			wantBasePrice:      200,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
		{
			name: "zero employee rate falls back to base rate",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePhysiotherapy,
				StartTime:   tuesdayAt(18),
				EndTime:     tuesdayAt(19),
			},
			employeeRate:       ptr.Ptr(0.0),
			wantFinalPrice:     150,
			wantBasePrice:      150,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
		{
			name: "personal training uses its own base rate",
			cfg:  baseConfig(),
			req: Request{
				ServiceType: domain.ServicePersonalTraining,
				StartTime:   tuesdayAt(18),
				EndTime:     tuesdayAt(19),
			},
			wantFinalPrice:     100,
			wantBasePrice:      100,
			wantDiscountAmount: 0,
			wantIsDeadHour:     false,
			wantMultiplier:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CalculatePrice(tt.cfg, tt.req, tt.employeeRate)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFinalPrice, got.FinalPrice)
			assert.Equal(t, tt.wantBasePrice, got.BasePrice)
			assert.Equal(t, tt.wantDiscountAmount, got.DiscountAmount)
			assert.Equal(t, tt.wantIsDeadHour, got.IsDeadHour)
			assert.Equal(t, tt.wantMultiplier, got.TimeMultiplier)
		})
	}
}

func TestCalculatePrice_Errors(t *testing.T) {
	engine := NewEngine()

	t.Run("end before start", func(t *testing.T) {
		_, err := engine.CalculatePrice(baseConfig(), Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(11),
			EndTime:     tuesdayAt(10),
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := engine.CalculatePrice(baseConfig(), Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(10),
			EndTime:     tuesdayAt(10),
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("unknown service type is rejected", func(t *testing.T) {
		_, err := engine.CalculatePrice(baseConfig(), Request{
			ServiceType: "massage",
			StartTime:   tuesdayAt(10),
			EndTime:     tuesdayAt(11),
		}, nil)
		assert.ErrorIs(t, err, ErrUnknownServiceType)
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Timezone = "Mars/Olympus"
		_, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(10),
			EndTime:     tuesdayAt(11),
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestCalculatePrice_DeadHoursWrapMidnight(t *testing.T) {
	engine := NewEngine()

	cfg := baseConfig()
	cfg.DeadHoursStart = 22
	cfg.DeadHoursEnd = 6

	deadHours := []int{22, 23, 0, 5}
	for _, h := range deadHours {
		start := tuesdayAt(h)
		got, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
		}, nil)
		require.NoError(t, err)
		assert.True(t, got.IsDeadHour, "hour %d must be a dead hour", h)
	}

	normalHours := []int{6, 12, 21}
	for _, h := range normalHours {
		start := tuesdayAt(h)
		got, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
		}, nil)
		require.NoError(t, err)
		assert.False(t, got.IsDeadHour, "hour %d must not be a dead hour", h)
	}
}

func TestCalculatePrice_TimezoneDrivesDeadHour(t *testing.T) {
	engine := NewEngine()

	cfg := baseConfig()
	cfg.Timezone = "Europe/Moscow" // UTC+3

	// 07:30 UTC = 10:30 по Москве - мёртвый час для окна 8-16
	start := time.Date(2025, 10, 14, 7, 30, 0, 0, time.UTC)
	got, err := engine.CalculatePrice(cfg, Request{
		ServiceType: domain.ServicePhysiotherapy,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}, nil)
	require.NoError(t, err)
	assert.True(t, got.IsDeadHour)
}

func TestCalculatePrice_RoundingHalfUp(t *testing.T) {
	engine := NewEngine()

	cfg := baseConfig()
	cfg.BaseRatePhysiotherapy = 33.33
	cfg.DeadHourDiscount = 0.5

	// 33.33 * 0.5 = 16.665 -> 16.67 (половина копейки вверх)
	got, err := engine.CalculatePrice(cfg, Request{
		ServiceType: domain.ServicePhysiotherapy,
		StartTime:   tuesdayAt(10),
		EndTime:     tuesdayAt(11),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 16.67, got.FinalPrice)
	assert.Equal(t, 16.67, got.DiscountAmount)
}

func TestCalculatePrice_DiscountBounds(t *testing.T) {
	engine := NewEngine()

	t.Run("full discount gives zero price", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DeadHourDiscount = 1.0
		got, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(10),
			EndTime:     tuesdayAt(11),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.FinalPrice)
	})

	t.Run("zero discount keeps full price in dead hours", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DeadHourDiscount = 0
		got, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(10),
			EndTime:     tuesdayAt(11),
		}, nil)
		require.NoError(t, err)
		assert.True(t, got.IsDeadHour)
		assert.Equal(t, 150.0, got.FinalPrice)
	})
}

// Цена растёт монотонно с длительностью при фиксированных остальных параметрах
func TestCalculatePrice_MonotonicInDuration(t *testing.T) {
	engine := NewEngine()
	cfg := baseConfig()

	prev := 0.0
	for minutes := 30; minutes <= 240; minutes += 30 {
		got, err := engine.CalculatePrice(cfg, Request{
			ServiceType: domain.ServicePhysiotherapy,
			StartTime:   tuesdayAt(17),
			EndTime:     tuesdayAt(17).Add(time.Duration(minutes) * time.Minute),
		}, nil)
		require.NoError(t, err)
		assert.Greater(t, got.FinalPrice, prev, "price must grow with duration (minutes=%d)", minutes)
		prev = got.FinalPrice
	}
}

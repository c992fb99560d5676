package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 14, hour, minute, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	// Бронирование [10:00, 11:00)
	res := &Reservation{StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"exact match", at(10, 0), at(11, 0), true},
		{"partial overlap from left", at(9, 30), at(10, 30), true},
		{"partial overlap from right", at(10, 30), at(11, 30), true},
		{"containing window", at(9, 0), at(12, 0), true},
		{"contained window", at(10, 15), at(10, 45), true},
		{"back-to-back before", at(9, 0), at(10, 0), false},
		{"back-to-back after", at(11, 0), at(12, 0), false},
		{"fully before", at(8, 0), at(9, 0), false},
		{"fully after", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_StatusPredicates(t *testing.T) {
	tests := []struct {
		status          ReservationStatus
		wantActive      bool
		wantCancellable bool
	}{
		{StatusConfirmed, true, true},
		{StatusCompleted, true, false},
		{StatusCancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res := &Reservation{Status: tt.status}
			assert.Equal(t, tt.wantActive, res.IsActive())
			assert.Equal(t, tt.wantCancellable, res.CanBeCancelled())
		})
	}
}

func TestServiceType_IsValid(t *testing.T) {
	assert.True(t, ServicePhysiotherapy.IsValid())
	assert.True(t, ServicePersonalTraining.IsValid())
	assert.True(t, ServiceOther.IsValid())
	assert.False(t, ServiceType("massage").IsValid())
	assert.False(t, ServiceType("").IsValid())
}

func TestEmployeeType_CompatibleWith(t *testing.T) {
	tests := []struct {
		employee EmployeeType
		service  ServiceType
		want     bool
	}{
		{EmployeePhysiotherapist, ServicePhysiotherapy, true},
		{EmployeeTrainer, ServicePhysiotherapy, false},
		{EmployeeOther, ServicePhysiotherapy, false},
		{EmployeeTrainer, ServicePersonalTraining, true},
		{EmployeePhysiotherapist, ServicePersonalTraining, false},
		// "other" принимает любую специализацию
		{EmployeePhysiotherapist, ServiceOther, true},
		{EmployeeTrainer, ServiceOther, true},
		{EmployeeOther, ServiceOther, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.employee.CompatibleWith(tt.service),
			"%s vs %s", tt.employee, tt.service)
	}
}

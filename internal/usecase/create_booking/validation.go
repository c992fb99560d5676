package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimeRange
	}

	if req.StartTime.Before(now) {
		return ErrDateInPast
	}

	durationMinutes := int(req.EndTime.Sub(req.StartTime).Minutes())
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// hasActiveOverlap проверяет окно [start, end) на пересечение
// с активными бронированиями по правилу полуинтервалов
func hasActiveOverlap(reservations []*domain.Reservation, start, end time.Time) bool {
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

package models

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// RoomReservationsRequest запрос бронирований комнаты за период
type RoomReservationsRequest struct {
	RoomID          int64
	WindowStart     *time.Time
	WindowEnd       *time.Time
	Status          *domain.ReservationStatus
	IncludeInactive bool
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64      `json:"id"`
	OwnerID            int64      `json:"ownerId"`
	LocationID         int64      `json:"locationId"`
	RoomID             int64      `json:"roomId"`
	EmployeeID         *int64     `json:"employeeId,omitempty"`
	ClientID           int64      `json:"clientId"`
	ServiceType        string     `json:"serviceType"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            time.Time  `json:"endTime"`
	Status             string     `json:"status"`
	FinalPrice         float64    `json:"finalPrice"`
	IsDeadHour         bool       `json:"isDeadHour"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		LocationID:         r.LocationID,
		RoomID:             r.RoomID,
		EmployeeID:         r.EmployeeID,
		ClientID:           r.ClientID,
		ServiceType:        string(r.ServiceType),
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Status:             string(r.Status),
		FinalPrice:         r.FinalPrice,
		IsDeadHour:         r.IsDeadHour,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

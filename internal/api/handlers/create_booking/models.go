package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OwnerID     int64   `json:"ownerId"`
	LocationID  int64   `json:"locationId"`
	RoomID      int64   `json:"roomId"`
	EmployeeID  *int64  `json:"employeeId,omitempty"`
	ServiceType string  `json:"serviceType"`
	StartTime   string  `json:"startTime"` // RFC3339, например "2025-10-15T10:00:00+03:00"
	EndTime     string  `json:"endTime"`
	Notes       *string `json:"notes,omitempty"`
}

// PriceDetailsResponse разбивка цены в HTTP ответе
type PriceDetailsResponse struct {
	BaseRate       float64  `json:"baseRate"`
	EmployeeRate   *float64 `json:"employeeRate,omitempty"`
	FinalBaseRate  float64  `json:"finalBaseRate"`
	DurationHours  float64  `json:"durationHours"`
	IsDeadHour     bool     `json:"isDeadHour"`
	TimeMultiplier float64  `json:"timeMultiplier"`
	BasePrice      float64  `json:"basePrice"`
	DiscountAmount float64  `json:"discountAmount"`
	FinalPrice     float64  `json:"finalPrice"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64                `json:"id"`
	OwnerID     int64                `json:"ownerId"`
	LocationID  int64                `json:"locationId"`
	RoomID      int64                `json:"roomId"`
	EmployeeID  *int64               `json:"employeeId,omitempty"`
	ClientID    int64                `json:"clientId"`
	ServiceType string               `json:"serviceType"`
	StartTime   string               `json:"startTime"`
	EndTime     string               `json:"endTime"`
	Status      string               `json:"status"`
	Notes       *string              `json:"notes,omitempty"`
	Price       PriceDetailsResponse `json:"price"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerID:     r.OwnerID,
		LocationID:  r.LocationID,
		RoomID:      r.RoomID,
		EmployeeID:  r.EmployeeID,
		ClientID:    clientID,
		ServiceType: r.ServiceType,
		StartTime:   startTime,
		EndTime:     endTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		OwnerID:     resp.OwnerID,
		LocationID:  resp.LocationID,
		RoomID:      resp.RoomID,
		EmployeeID:  resp.EmployeeID,
		ClientID:    resp.ClientID,
		ServiceType: resp.ServiceType,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		Status:      resp.Status,
		Notes:       resp.Notes,
		Price: PriceDetailsResponse{
			BaseRate:       resp.Price.BaseRate,
			EmployeeRate:   resp.Price.EmployeeRate,
			FinalBaseRate:  resp.Price.FinalBaseRate,
			DurationHours:  resp.Price.DurationHours,
			IsDeadHour:     resp.Price.IsDeadHour,
			TimeMultiplier: resp.Price.TimeMultiplier,
			BasePrice:      resp.Price.BasePrice,
			DiscountAmount: resp.Price.DiscountAmount,
			FinalPrice:     resp.Price.FinalPrice,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

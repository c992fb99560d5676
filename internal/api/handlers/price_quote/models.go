package price_quote

import (
	"time"

	priceQuote "github.com/m04kA/SBM-BookingService/internal/usecase/price_quote"
)

// PriceQuoteRequest HTTP request model
type PriceQuoteRequest struct {
	OwnerID     int64  `json:"ownerId"`
	LocationID  int64  `json:"locationId,omitempty"`
	EmployeeID  *int64 `json:"employeeId,omitempty"`
	ServiceType string `json:"serviceType"`
	StartTime   string `json:"startTime"` // RFC3339
	EndTime     string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PriceQuoteRequest) ToUseCaseRequest() (*priceQuote.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &priceQuote.Request{
		OwnerID:     r.OwnerID,
		LocationID:  r.LocationID,
		EmployeeID:  r.EmployeeID,
		ServiceType: r.ServiceType,
		StartTime:   startTime,
		EndTime:     endTime,
	}, nil
}

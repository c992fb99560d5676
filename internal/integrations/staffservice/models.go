package staffservice

import "github.com/m04kA/SBM-BookingService/internal/domain"

// Employee модель сотрудника из StaffService
type Employee struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Type        domain.EmployeeType `json:"type"` // physiotherapist | personal_trainer | other
	LocationIDs []int64             `json:"location_ids"`
	IsActive    bool                `json:"is_active"`
}

// HourlyRate модель персональной часовой ставки сотрудника на локации
// Rate = null означает, что персональная ставка не задана
// и применяется базовая ставка категории
type HourlyRate struct {
	EmployeeID int64    `json:"employee_id"`
	LocationID int64    `json:"location_id"`
	Rate       *float64 `json:"rate"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

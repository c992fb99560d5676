package find_employees

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/integrations/staffservice"
)

// Request модель запроса свободных сотрудников
type Request struct {
	LocationID  int64     // ID локации
	ServiceType string    // Тип услуги
	StartTime   time.Time // Начало окна
	EndTime     time.Time // Конец окна
}

// Employee сотрудник, свободный в запрошенном окне
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Response свободные и совместимые с услугой сотрудники
// Порядок повторяет порядок справочника StaffService
type Response struct {
	Employees []Employee `json:"employees"`
}

// fromStaffEmployees конвертирует сотрудников StaffService в ответ
func fromStaffEmployees(employees []staffservice.Employee) *Response {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		out = append(out, Employee{
			ID:   e.ID,
			Name: e.Name,
			Type: string(e.Type),
		})
	}

	return &Response{Employees: out}
}

package find_employees

import (
	"context"

	findEmployees "github.com/m04kA/SBM-BookingService/internal/usecase/find_employees"
)

type FindEmployeesUseCase interface {
	Execute(ctx context.Context, req *findEmployees.Request) (*findEmployees.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

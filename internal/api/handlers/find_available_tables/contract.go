package find_available_tables

import (
	"context"

	findAvailableTables "github.com/josephken/RMS-ReservationService/internal/usecase/find_available_tables"
)

type FindAvailableTablesUseCase interface {
	Execute(ctx context.Context, req *findAvailableTables.Request) (*findAvailableTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

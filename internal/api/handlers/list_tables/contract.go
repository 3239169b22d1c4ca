package list_tables

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
)

type TableService interface {
	List(ctx context.Context, requesterID int64) (*models.TableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

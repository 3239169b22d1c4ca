package get_table

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/service/tables/models"
)

type TableService interface {
	GetByID(ctx context.Context, id int64, requesterID int64) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

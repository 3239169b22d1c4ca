package arrive_reservation

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	MarkArrived(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	"github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	"github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	UpdateDetails(ctx context.Context, id int64, guests *int, phone *string) error
	Delete(ctx context.Context, id int64) error
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DiningTable, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// NotificationDispatcher интерфейс асинхронной отправки уведомлений
type NotificationDispatcher interface {
	Dispatch(event notifyservice.Event, notification *notifyservice.ReservationNotification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

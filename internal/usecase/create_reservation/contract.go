package create_reservation

import (
	"context"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	"github.com/josephken/RMS-ReservationService/internal/integrations/notifyservice"
	"github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ExistsOverlapping(ctx context.Context, tableID int64, start, end time.Time) (bool, error)
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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

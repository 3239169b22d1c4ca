package tables

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	"github.com/josephken/RMS-ReservationService/internal/integrations/userservice"
)

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	Create(ctx context.Context, t *domain.DiningTable) (*domain.DiningTable, error)
	GetByID(ctx context.Context, id int64) (*domain.DiningTable, error)
	List(ctx context.Context) ([]*domain.DiningTable, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	HasActiveReservations(ctx context.Context, tableID int64) (bool, error)
	Update(ctx context.Context, t *domain.DiningTable) error
	Delete(ctx context.Context, id int64) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

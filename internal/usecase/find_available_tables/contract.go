package find_available_tables

import (
	"context"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	FindAvailable(ctx context.Context, capacity int, start, end time.Time) ([]*domain.DiningTable, error)
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

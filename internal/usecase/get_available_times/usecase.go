package get_available_times

import (
	"context"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

// UseCase use case для получения доступных дат и времён бронирования
// Чистое вычисление поверх текущего времени: результат зависит только от
// "сейчас" и пересчитывается на каждый запрос, блокировки не требуются
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времён
func (uc *UseCase) Execute(_ context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	days := generateDays(now)

	uc.logger.Info("GetAvailableTimes: generated %d days starting %s (now=%s)",
		len(days), days[0].Date.Format(domain.DateFormat), now.Format(domain.DateFormat+" "+domain.TimeFormat))

	return &Response{Days: days}, nil
}

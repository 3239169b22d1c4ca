package find_available_tables

import (
	"context"
	"fmt"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

// UseCase use case для поиска свободных столиков на заданный слот
type UseCase struct {
	tableRepo    TableRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tableRepo TableRepository, logger Logger) *UseCase {
	return &UseCase{
		tableRepo:    tableRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск столиков нужного тира, свободных
// в интервале [start, start+2h)
// Порядок проверок фиксирован: входные данные, целый час,
// календарные правила, тир вместимости, запрос к хранилищу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableTables: guests=%d, start=%s",
		req.Guests, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if req.Guests < 1 {
		uc.logger.Warn("FindAvailableTables: invalid guests=%d", req.Guests)
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// 2. Начало строго на целом часу
	if !domain.IsOnTheHour(req.StartTime) {
		uc.logger.Warn("FindAvailableTables: start time not on the hour: %s",
			req.StartTime.Format(domain.TimeFormat))
		return nil, ErrNotOnTheHour
	}

	start := req.StartTime
	end := start.Add(domain.ReservationDuration)
	now := uc.timeProvider.Now()

	// 3. Календарные правила
	if err := validateSlotTime(start, now); err != nil {
		uc.logger.Warn("FindAvailableTables: time validation failed: %v", err)
		return nil, err
	}

	// 4. Определяем тир вместимости; запрос к хранилищу не выполняется,
	// если размер компании вне допустимого диапазона
	capacity, err := domain.RequiredCapacity(req.Guests)
	if err != nil {
		uc.logger.Warn("FindAvailableTables: party of %d exceeds maximum capacity", req.Guests)
		return nil, fmt.Errorf("%w: party of %d exceeds maximum table capacity", ErrCapacityExceeded, req.Guests)
	}

	// 5. Столики нужного тира без пересекающихся подтвержденных броней
	tables, err := uc.tableRepo.FindAvailable(ctx, capacity, start, end)
	if err != nil {
		uc.logger.Error("FindAvailableTables: failed to query tables: %v", err)
		return nil, fmt.Errorf("%w: failed to find available tables: %v", ErrInternal, err)
	}

	resp := &Response{Tables: make([]TableInfo, 0, len(tables))}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, TableInfo{
			ID:       t.ID,
			Name:     t.Name,
			Floor:    t.Floor,
			Capacity: t.Capacity,
		})
	}

	uc.logger.Info("FindAvailableTables: found %d tables for capacity=%d", len(resp.Tables), capacity)

	return resp, nil
}

// validateSlotTime проверяет календарные правила для начала слота:
// рабочие часы, lead time в 30 минут и двухнедельное окно бронирования
func validateSlotTime(start, now time.Time) error {
	if start.Before(domain.OpeningTimeOn(start)) || start.After(domain.LastReservationTimeOn(start)) {
		return fmt.Errorf("%w: outside operating hours", ErrTimeNotAvailable)
	}

	if start.Before(now) {
		return fmt.Errorf("%w: start time is in the past", ErrTimeNotAvailable)
	}

	if start.Before(now.Add(domain.MinNoticeMinutes * time.Minute)) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTimeNotAvailable, domain.MinNoticeMinutes)
	}

	maxAdvance := domain.LastReservationTimeOn(now.AddDate(0, 0, 7*domain.AdvanceWindowWeeks))
	if start.After(maxAdvance) {
		return fmt.Errorf("%w: can only book %d weeks in advance", ErrTimeNotAvailable, domain.AdvanceWindowWeeks)
	}

	return nil
}

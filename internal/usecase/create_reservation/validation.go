package create_reservation

import (
	"fmt"
	"time"

	"github.com/josephken/RMS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return nil
}

// validateReservationTime проверяет календарные правила для начала брони:
// 1. Рабочие часы: начало в пределах 10:00-20:00 включительно
// 2. Начало не в прошлом и не ближе 30 минут от "сейчас" (lead time)
// 3. Начало не позже последнего слота (20:00) последнего дня двухнедельного окна,
// то же множество слотов, что отдает календарь доступных времён
func validateReservationTime(start, now time.Time) error {
	if outOfOperatingHours(start) {
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

// outOfOperatingHours проверяет, что время начала вне бронируемых часов
// Бронь может начинаться в любой целый час с 10:00 по 20:00 включительно
func outOfOperatingHours(start time.Time) bool {
	return start.Before(domain.OpeningTimeOn(start)) ||
		start.After(domain.LastReservationTimeOn(start))
}

// validateCapacity проверяет, что вместимость столика точно совпадает с
// требуемым тиром для размера компании
// Совпадение строгое: столики не объединяются и не делятся
func validateCapacity(table *domain.DiningTable, guests int) error {
	required, err := domain.RequiredCapacity(guests)
	if err != nil {
		return fmt.Errorf("%w: party of %d exceeds maximum table capacity", ErrCapacityExceeded, guests)
	}

	if table.Capacity != required {
		return fmt.Errorf("%w: party of %d requires a table for %d, got %d",
			ErrCapacityExceeded, guests, required, table.Capacity)
	}

	return nil
}

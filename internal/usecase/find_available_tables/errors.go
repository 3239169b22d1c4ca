package find_available_tables

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_available_tables: invalid input")

	// ErrNotOnTheHour возвращается, если время брони не на целом часу
	ErrNotOnTheHour = errors.New("find_available_tables: reservation time must be on the hour")

	// ErrTimeNotAvailable возвращается, если слот вне рабочих часов или окна бронирования
	ErrTimeNotAvailable = errors.New("find_available_tables: requested time is not available")

	// ErrCapacityExceeded возвращается, если размер группы превышает максимальный
	ErrCapacityExceeded = errors.New("find_available_tables: party size exceeds maximum capacity")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("find_available_tables: internal error")
)
